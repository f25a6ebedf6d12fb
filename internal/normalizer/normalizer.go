// Package normalizer converts raw document-understanding payloads into
// validated transaction records. The payload is the JSON text returned by the
// external AI service for a scanned receipt or bank statement; the network
// call itself happens upstream and is never performed here.
package normalizer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finsight/internal/classifier"
	"finsight/internal/dateutils"
	"finsight/internal/finerror"
	"finsight/internal/logging"
	"finsight/internal/models"
)

// Source identifies the document kind a payload was extracted from.
type Source string

const (
	SourceReceipt   Source = "receipt"
	SourceStatement Source = "statement"
)

// receiptPayload is the expected shape for a single scanned receipt.
type receiptPayload struct {
	Amount   *json.Number `json:"amount"`
	Merchant string       `json:"merchant"`
	Category string       `json:"category"`
}

// statementPayload is the expected shape for a parsed bank statement.
type statementPayload struct {
	Transactions []statementEntry `json:"transactions"`
}

type statementEntry struct {
	Amount      *json.Number `json:"amount"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Date        string       `json:"date"`
}

// Normalizer validates untrusted document payloads and produces transaction
// records, invoking the classifier for entries the source did not label.
type Normalizer struct {
	classifier *classifier.Classifier
	categories []models.Category
	logger     logging.Logger

	// Now and NewID are injection points for deterministic tests. They
	// default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// New creates a Normalizer using the given classifier and category catalog.
func New(cls *classifier.Classifier, categories []models.Category, logger logging.Logger) *Normalizer {
	return &Normalizer{
		classifier: cls,
		categories: categories,
		logger:     logger,
		Now:        time.Now,
		NewID:      uuid.NewString,
	}
}

// Normalize turns a raw AI-service payload into validated transactions.
// Validation failures abort the whole batch: a single bad entry fails the
// call rather than silently dropping data.
func (n *Normalizer) Normalize(raw []byte, source Source) ([]models.Transaction, error) {
	cleaned := CleanModelJSON(string(raw))

	var payload interface{}
	decoder := json.NewDecoder(strings.NewReader(cleaned))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, &finerror.MalformedResponseError{
			Source: string(source),
			Reason: "invalid JSON",
			Err:    err,
		}
	}

	if _, ok := payload.(map[string]interface{}); !ok {
		return nil, &finerror.UnsupportedInputError{
			Reason: "payload is not a JSON object",
		}
	}

	switch source {
	case SourceReceipt:
		return n.normalizeReceipt(cleaned)
	case SourceStatement:
		return n.normalizeStatement(cleaned)
	default:
		return nil, &finerror.UnsupportedInputError{
			Reason: "unknown document source: " + string(source),
		}
	}
}

// normalizeReceipt produces exactly one expense transaction from a receipt
// payload. Receipts carry no transaction date, so the processing time is used.
func (n *Normalizer) normalizeReceipt(cleaned string) ([]models.Transaction, error) {
	var receipt receiptPayload
	if err := json.Unmarshal([]byte(cleaned), &receipt); err != nil {
		return nil, &finerror.MalformedResponseError{
			Source: string(SourceReceipt),
			Reason: "unexpected receipt shape",
			Err:    err,
		}
	}

	merchant := strings.TrimSpace(receipt.Merchant)
	if receipt.Amount == nil || merchant == "" {
		return nil, &finerror.MalformedResponseError{
			Source: string(SourceReceipt),
			Reason: "missing amount or merchant",
		}
	}

	amount, err := parseAmount(*receipt.Amount, merchant)
	if err != nil {
		return nil, err
	}

	categoryID := n.resolveCategory(receipt.Category, merchant)

	tx := models.Transaction{
		ID:            n.NewID(),
		Amount:        amount.Abs().Neg(), // receipts are always expenses
		CategoryID:    categoryID,
		Description:   merchant,
		Date:          n.Now(),
		PaymentMethod: models.PaymentMethodCard,
	}

	n.logger.Debug("Normalized receipt payload",
		logging.Field{Key: logging.FieldCategory, Value: tx.CategoryID},
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID})

	return []models.Transaction{tx}, nil
}

// normalizeStatement produces one transaction per statement entry. Credits
// keep their sign and are tagged as income; debits are forced negative and
// classified from their description.
func (n *Normalizer) normalizeStatement(cleaned string) ([]models.Transaction, error) {
	// Distinguish "transactions missing/not an array" from other decode
	// failures before unmarshaling into the typed payload.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &finerror.MalformedResponseError{
			Source: string(SourceStatement),
			Reason: "unexpected statement shape",
			Err:    err,
		}
	}
	rawList, ok := probe["transactions"]
	if !ok || !isJSONArray(rawList) {
		return nil, &finerror.MalformedResponseError{
			Source: string(SourceStatement),
			Reason: "transactions is not an array",
		}
	}

	var payload statementPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &finerror.MalformedResponseError{
			Source: string(SourceStatement),
			Reason: "unexpected statement shape",
			Err:    err,
		}
	}

	transactions := make([]models.Transaction, 0, len(payload.Transactions))
	for _, entry := range payload.Transactions {
		if entry.Amount == nil {
			return nil, &finerror.InvalidTransactionError{
				Description: entry.Description,
				Field:       "amount",
				Reason:      "missing or not a number",
			}
		}

		amount, err := parseAmount(*entry.Amount, entry.Description)
		if err != nil {
			return nil, err
		}

		// Credits keep their sign; everything else is normalized to a
		// negative expense amount.
		var categoryID string
		if amount.IsPositive() {
			categoryID = models.CategoryIncome
		} else {
			amount = amount.Abs().Neg()
			categoryID = n.classifier.Classify(entry.Description)
		}

		// Missing or unparseable dates fall back to the processing time.
		// This is a policy choice, not silent coercion: statements from the
		// document service occasionally omit dates and the entry is still
		// worth keeping.
		date := n.Now()
		if entry.Date != "" {
			if parsed, err := dateutils.ParseDate(entry.Date); err == nil {
				date = parsed
			} else {
				n.logger.WithError(err).Warn("Statement entry has unparseable date, using processing time",
					logging.Field{Key: logging.FieldReason, Value: entry.Date})
			}
		}

		transactions = append(transactions, models.Transaction{
			ID:            n.NewID(),
			Amount:        amount,
			CategoryID:    categoryID,
			Description:   strings.TrimSpace(entry.Description),
			Date:          date,
			PaymentMethod: models.PaymentMethodBank,
		})
	}

	n.logger.Info("Normalized statement payload",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

// resolveCategory maps a source-provided category label to a known catalog
// id, falling back to keyword classification of the merchant name.
func (n *Normalizer) resolveCategory(provided, merchant string) string {
	label := strings.TrimSpace(provided)
	if label != "" {
		for _, c := range n.categories {
			if strings.EqualFold(c.ID, label) || strings.EqualFold(c.Name, label) {
				return c.ID
			}
		}
	}
	return n.classifier.Classify(merchant)
}

// parseAmount converts a JSON number to a decimal, rejecting anything that
// is not a finite number.
func parseAmount(num json.Number, description string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Decimal{}, &finerror.InvalidTransactionError{
			Description: description,
			Field:       "amount",
			Reason:      "not a finite number: " + num.String(),
		}
	}
	return amount, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

// CleanModelJSON strips Markdown code fences and surrounding junk the model
// sometimes wraps around its JSON output despite instructions.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
