// Package insights handles generating advisory insights from transactions.
package insights

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"finsight/cmd/common"
	"finsight/cmd/root"
	"finsight/internal/aggregator"
	"finsight/internal/csvio"
	"finsight/internal/insights"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate spending insights from a transactions CSV",
	Long: `Insights aggregates a transactions CSV into income, expense, category and
monthly totals, evaluates them against the configured budgets, and prints an
ordered list of advisory messages.`,
	Run: insightsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.BudgetsFile, "budgets", "b", "", "Budgets YAML file (defaults to configured budgets)")
}

func insightsFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required, use --input")
	}

	f, err := os.Open(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error opening input file: %v", err)
	}
	defer f.Close()

	transactions, err := csvio.ReadTransactions(f)
	if err != nil {
		root.Log.Fatalf("Error reading transactions: %v", err)
	}

	categories, budgets := common.LoadCatalogAndBudgets(root.Cfg, root.BudgetsFile, root.Log)

	summary := aggregator.Aggregate(transactions)
	result := insights.Generate(summary, categories, budgets)

	if len(result) == 0 {
		fmt.Println("No insights: no transactions to analyze.")
		return
	}

	for _, insight := range result {
		marker := strings.ToUpper(insight.Severity)
		if insight.Priority {
			marker += "/PRIORITY"
		}
		fmt.Printf("[%s] %s\n", marker, insight.Title)
		fmt.Printf("  %s\n", strings.ReplaceAll(insight.Message, "\n", "\n  "))
		if insight.Source != "" {
			fmt.Printf("  Learn more: %s\n", insight.Source)
		}
		for _, tip := range insight.Advice {
			fmt.Printf("  - %s: %s\n    Learn more: %s\n", tip.Title, tip.Tip, tip.Source)
		}
		fmt.Println()
	}
}
