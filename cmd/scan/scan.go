// Package scan handles scanning receipts and bank statements through the AI
// document service.
package scan

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"finsight/cmd/common"
	"finsight/cmd/root"
	"finsight/internal/classifier"
	"finsight/internal/docai"
	"finsight/internal/normalizer"
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a receipt or bank statement into categorized transactions",
	Long: `Scan sends a receipt or bank statement document to the Gemini document
service, normalizes the extracted data into validated transactions, and
writes them as CSV.`,
	Run: scanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SourceType, "source", "s", "receipt", "Document source: receipt or statement")
	Cmd.Flags().StringVarP(&root.MimeType, "mime", "m", "", "Document MIME type (detected from file extension when omitted)")
}

func scanFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required, use --input")
	}

	source := normalizer.Source(root.SourceType)
	if source != normalizer.SourceReceipt && source != normalizer.SourceStatement {
		root.Log.Fatalf("Invalid source %q, expected receipt or statement", root.SourceType)
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	mimeType := root.MimeType
	if mimeType == "" {
		mimeType = docai.MimeTypeForFile(root.SharedFlags.Input)
		if mimeType == "" {
			root.Log.Fatalf("Could not detect MIME type for %s, use --mime", root.SharedFlags.Input)
		}
	}

	ctx := context.Background()
	extractor, err := docai.NewGeminiExtractor(ctx,
		root.Cfg.AI.APIKey,
		root.Cfg.AI.Model,
		time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second,
		root.Logger())
	if err != nil {
		root.Log.Fatalf("Error creating document extractor: %v", err)
	}
	defer extractor.Close()

	rawJSON, err := extractor.Extract(ctx, docai.Document{Data: data, MimeType: mimeType}, source)
	if err != nil {
		root.Log.Fatalf("Error extracting document: %v", err)
	}

	categories, _ := common.LoadCatalogAndBudgets(root.Cfg, "", root.Log)
	norm := normalizer.New(classifier.New(), categories, root.Logger())

	transactions, err := norm.Normalize([]byte(rawJSON), source)
	if err != nil {
		root.Log.Fatalf("Error normalizing document payload: %v", err)
	}

	common.WriteTransactions(root.SharedFlags.Output, transactions, root.Log)
}
