// Package categorize handles transaction categorization commands
package categorize

import (
	"github.com/spf13/cobra"

	"finsight/cmd/root"
	"finsight/internal/classifier"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long:  `Categorize a free-text transaction description using ordered keyword matching. Descriptions no rule matches fall back to the "other" category.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	if root.Description == "" {
		root.Log.Error("Description is required for categorization")
		return
	}

	categoryID := classifier.New().Classify(root.Description)
	root.Log.Infof("Category: %s", categoryID)
}
