// Package csvio reads statement CSV files and writes normalized transactions
// back out as CSV. Imported statement rows are converted to the same payload
// shape the document service produces, so they flow through the exact same
// normalization and validation path as AI-extracted statements.
package csvio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"finsight/internal/dateutils"
	"finsight/internal/models"
)

// StatementRow is one row of an imported statement CSV. The expected columns
// are date, amount and description.
type StatementRow struct {
	Date        string  `csv:"date" json:"date"`
	Amount      float64 `csv:"amount" json:"amount"`
	Description string  `csv:"description" json:"description"`
}

// transactionRow is the on-disk CSV shape of a normalized transaction.
type transactionRow struct {
	ID            string `csv:"id"`
	Date          string `csv:"date"`
	Amount        string `csv:"amount"`
	CategoryID    string `csv:"category_id"`
	Description   string `csv:"description"`
	PaymentMethod string `csv:"payment_method"`
}

// ReadStatementRows parses a statement CSV.
func ReadStatementRows(r io.Reader) ([]StatementRow, error) {
	var rows []StatementRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("could not parse statement CSV: %w", err)
	}
	return rows, nil
}

// ToStatementPayload converts statement rows into the JSON payload shape the
// normalizer consumes.
func ToStatementPayload(rows []StatementRow) ([]byte, error) {
	payload := struct {
		Transactions []StatementRow `json:"transactions"`
	}{Transactions: rows}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not build statement payload: %w", err)
	}
	return data, nil
}

// WriteTransactions writes transactions as CSV with ISO dates and two-decimal
// amounts.
func WriteTransactions(w io.Writer, transactions []models.Transaction) error {
	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionRow{
			ID:            tx.ID,
			Date:          dateutils.ToISODate(tx.Date),
			Amount:        tx.Amount.StringFixed(2),
			CategoryID:    tx.CategoryID,
			Description:   tx.Description,
			PaymentMethod: tx.PaymentMethod,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("could not write transactions CSV: %w", err)
	}
	return nil
}

// ReadTransactions parses a transactions CSV previously written by
// WriteTransactions.
func ReadTransactions(r io.Reader) ([]models.Transaction, error) {
	var rows []transactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("could not parse transactions CSV: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		date, err := dateutils.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row.ID, err)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %q: invalid amount %q: %w", row.ID, row.Amount, err)
		}
		transactions = append(transactions, models.Transaction{
			ID:            row.ID,
			Date:          date,
			Amount:        amount,
			CategoryID:    row.CategoryID,
			Description:   row.Description,
			PaymentMethod: row.PaymentMethod,
		})
	}
	return transactions, nil
}
