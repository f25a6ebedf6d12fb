// Package aggregator computes derived financial summaries from transaction
// lists. Totals are always recomputed from the current transaction list,
// never stored.
package aggregator

import (
	"github.com/shopspring/decimal"

	"finsight/internal/dateutils"
	"finsight/internal/models"
)

// MonthTotal is the total debit volume for one calendar month. The slice of
// month totals preserves the order in which months first occur in the
// transaction list, which is chronological for date-ordered input.
type MonthTotal struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds the aggregates derived from a transaction list.
//
// ByCategory contains debit totals (absolute values) keyed by category id;
// categories with no debits are absent rather than zero-valued. SavingsRate
// is a percentage of income and is nil when there is no income, so division
// by zero never happens and no NaN can leak into downstream consumers.
type Summary struct {
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalExpenses    decimal.Decimal            `json:"total_expenses"`
	ByCategory       map[string]decimal.Decimal `json:"by_category"`
	SavingsRate      *float64                   `json:"savings_rate,omitempty"`
	Monthly          []MonthTotal               `json:"monthly"`
	TransactionCount int                        `json:"transaction_count"`
}

// Surplus returns income minus expenses.
func (s Summary) Surplus() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses)
}

// CategoryTotal returns the debit total for a category, or zero when the
// category has no debits.
func (s Summary) CategoryTotal(categoryID string) decimal.Decimal {
	if total, ok := s.ByCategory[categoryID]; ok {
		return total
	}
	return decimal.Zero
}

// Aggregate computes the summary for a transaction list. It is pure and
// deterministic: the same input always yields the same summary.
func Aggregate(transactions []models.Transaction) Summary {
	summary := Summary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		ByCategory:       make(map[string]decimal.Decimal),
		TransactionCount: len(transactions),
	}

	monthIndex := make(map[string]int)

	for _, tx := range transactions {
		if tx.Amount.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			continue
		}
		if tx.Amount.IsZero() {
			// Zero amounts contribute nothing to any total.
			continue
		}

		spent := tx.Amount.Abs()
		summary.TotalExpenses = summary.TotalExpenses.Add(spent)
		summary.ByCategory[tx.CategoryID] = summary.CategoryTotal(tx.CategoryID).Add(spent)

		label := dateutils.MonthLabel(tx.Date)
		if idx, ok := monthIndex[label]; ok {
			summary.Monthly[idx].Total = summary.Monthly[idx].Total.Add(spent)
		} else {
			monthIndex[label] = len(summary.Monthly)
			summary.Monthly = append(summary.Monthly, MonthTotal{Label: label, Total: spent})
		}
	}

	if summary.TotalIncome.IsPositive() {
		rate, _ := summary.Surplus().
			Div(summary.TotalIncome).
			Mul(decimal.NewFromInt(100)).
			Float64()
		summary.SavingsRate = &rate
	}

	return summary
}
