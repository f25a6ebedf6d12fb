// Package importcsv handles importing statement CSV files.
package importcsv

import (
	"os"

	"github.com/spf13/cobra"

	"finsight/cmd/common"
	"finsight/cmd/root"
	"finsight/internal/classifier"
	"finsight/internal/csvio"
	"finsight/internal/normalizer"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a statement CSV file into categorized transactions",
	Long: `Import reads a statement CSV with date, amount and description columns and
normalizes the rows into validated, categorized transactions. Rows flow
through the same validation as AI-extracted statements.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required, use --input")
	}

	f, err := os.Open(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error opening input file: %v", err)
	}
	defer f.Close()

	rows, err := csvio.ReadStatementRows(f)
	if err != nil {
		root.Log.Fatalf("Error reading statement CSV: %v", err)
	}

	payload, err := csvio.ToStatementPayload(rows)
	if err != nil {
		root.Log.Fatalf("Error building statement payload: %v", err)
	}

	categories, _ := common.LoadCatalogAndBudgets(root.Cfg, "", root.Log)
	norm := normalizer.New(classifier.New(), categories, root.Logger())

	transactions, err := norm.Normalize(payload, normalizer.SourceStatement)
	if err != nil {
		root.Log.Fatalf("Error normalizing statement rows: %v", err)
	}

	common.WriteTransactions(root.SharedFlags.Output, transactions, root.Log)
}
