// Package budget handles listing and updating per-category budgets.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"finsight/cmd/root"
	"finsight/internal/catalog"
	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/store"
)

var (
	categoryID string
	amount     string
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "List or update per-category budgets",
	Long: `Budget prints the configured per-category budgets. With --category and
--amount it updates the budget for one category and saves the budget set.`,
	Run: budgetFunc,
}

func init() {
	Cmd.Flags().StringVarP(&categoryID, "category", "c", "", "Category id to update")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New budget amount for the category")
}

func budgetFunc(cmd *cobra.Command, args []string) {
	st := store.New(root.Cfg.Data.CatalogFile, root.Cfg.Data.BudgetsFile,
		logging.NewLogrusAdapterFromLogger(root.Log))

	categories, err := st.LoadCatalog()
	if err != nil {
		root.Log.Fatalf("Error loading category catalog: %v", err)
	}
	budgets, err := st.LoadBudgets(categories)
	if err != nil {
		root.Log.Fatalf("Error loading budgets: %v", err)
	}

	if categoryID != "" || amount != "" {
		if categoryID == "" || amount == "" {
			root.Log.Fatal("Both --category and --amount are required to update a budget")
		}
		if _, ok := catalog.ByID(categories, categoryID); !ok {
			root.Log.Fatalf("Unknown category %q", categoryID)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil || value.IsNegative() {
			root.Log.Fatalf("Invalid budget amount %q", amount)
		}

		budgets = models.UpsertBudget(budgets, models.Budget{CategoryID: categoryID, Amount: value})
		if err := st.SaveBudgets(budgets); err != nil {
			root.Log.Fatalf("Error saving budgets: %v", err)
		}
		root.Log.Infof("Budget for %s set to %s", categoryID, value.StringFixed(2))
	}

	for _, category := range categories {
		fmt.Printf("%-14s %-16s %10s\n", category.ID, category.Name,
			models.BudgetFor(budgets, category.ID).StringFixed(2))
	}
}
