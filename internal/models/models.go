// Package models defines the core domain types shared across the pipeline:
// categories, transactions, budgets and generated insights.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a named spending bucket with a display color and a
// default budget. The catalog of categories is immutable after load; Color is
// an opaque display token and never drives pipeline logic.
type Category struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Color         string          `json:"color" yaml:"color"`
	DefaultBudget decimal.Decimal `json:"default_budget" yaml:"default_budget"`
}

// Transaction represents a single signed monetary event. Positive amounts are
// income/credits, negative amounts are expenses/debits; the signed-amount
// convention is used uniformly.
type Transaction struct {
	ID            string          `json:"id" csv:"id"`
	Amount        decimal.Decimal `json:"amount" csv:"amount"`
	CategoryID    string          `json:"category_id" csv:"category_id"`
	Description   string          `json:"description" csv:"description"`
	Date          time.Time       `json:"date" csv:"-"`
	PaymentMethod string          `json:"payment_method" csv:"payment_method"`
}

// IsCredit returns true if the transaction is income.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// IsDebit returns true if the transaction is an expense.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// Budget is a per-category spending ceiling. A budget set holds at most one
// entry per category id; updates go through upsert-by-key semantics.
type Budget struct {
	CategoryID string          `json:"category_id" yaml:"category_id"`
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
}

// UpsertBudget replaces the budget for the given category or appends a new
// one, preserving the at-most-one-per-category invariant. The input slice is
// not mutated.
func UpsertBudget(budgets []Budget, b Budget) []Budget {
	out := make([]Budget, len(budgets))
	copy(out, budgets)
	for i := range out {
		if out[i].CategoryID == b.CategoryID {
			out[i].Amount = b.Amount
			return out
		}
	}
	return append(out, b)
}

// BudgetFor returns the budget amount for a category, or zero when no budget
// exists. This is a pure lookup.
func BudgetFor(budgets []Budget, categoryID string) decimal.Decimal {
	for _, b := range budgets {
		if b.CategoryID == categoryID {
			return b.Amount
		}
	}
	return decimal.Zero
}
