// Package catalog provides the static category catalog. The catalog is
// loaded once at process start and never mutated by the pipeline.
package catalog

import (
	"github.com/shopspring/decimal"

	"finsight/internal/models"
)

// Default returns the built-in category catalog. Colors are display tokens
// only; budgets are the per-category starting points for the budget set.
func Default() []models.Category {
	return []models.Category{
		{ID: models.CategoryFood, Name: "Food & Dining", Color: "#ef4444", DefaultBudget: decimal.NewFromInt(500)},
		{ID: models.CategoryRent, Name: "Housing & Rent", Color: "#3b82f6", DefaultBudget: decimal.NewFromInt(1200)},
		{ID: models.CategoryTransport, Name: "Transportation", Color: "#22c55e", DefaultBudget: decimal.NewFromInt(300)},
		{ID: models.CategoryUtilities, Name: "Utilities", Color: "#f59e0b", DefaultBudget: decimal.NewFromInt(200)},
		{ID: models.CategoryEntertainment, Name: "Entertainment", Color: "#8b5cf6", DefaultBudget: decimal.NewFromInt(150)},
		{ID: models.CategoryHealth, Name: "Healthcare", Color: "#ec4899", DefaultBudget: decimal.NewFromInt(100)},
		{ID: models.CategoryShopping, Name: "Shopping", Color: "#06b6d4", DefaultBudget: decimal.NewFromInt(200)},
		{ID: models.CategoryTravel, Name: "Travel", Color: "#14b8a6", DefaultBudget: decimal.NewFromInt(300)},
		{ID: models.CategoryEducation, Name: "Education", Color: "#f97316", DefaultBudget: decimal.NewFromInt(100)},
		{ID: models.CategoryOther, Name: "Other", Color: "#6b7280", DefaultBudget: decimal.NewFromInt(100)},
	}
}

// DefaultBudgets derives the initial budget set from the catalog's default
// budgets, one entry per category.
func DefaultBudgets(categories []models.Category) []models.Budget {
	budgets := make([]models.Budget, 0, len(categories))
	for _, c := range categories {
		budgets = append(budgets, models.Budget{
			CategoryID: c.ID,
			Amount:     c.DefaultBudget,
		})
	}
	return budgets
}

// ByID returns the category with the given id, or false when the catalog
// does not contain it.
func ByID(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Name returns the display name for a category id, or "Unknown" when the
// catalog does not contain it.
func Name(categories []models.Category, id string) string {
	if c, ok := ByID(categories, id); ok {
		return c.Name
	}
	return "Unknown"
}
