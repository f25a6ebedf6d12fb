// Package common contains shared functionality for command handlers
package common

import (
	"os"

	"github.com/sirupsen/logrus"

	"finsight/internal/config"
	"finsight/internal/csvio"
	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/store"
)

// LoadCatalogAndBudgets loads the category catalog and budget set configured
// in cfg, exiting on unrecoverable errors.
func LoadCatalogAndBudgets(cfg *config.Config, budgetsFile string, log *logrus.Logger) ([]models.Category, []models.Budget) {
	if budgetsFile == "" {
		budgetsFile = cfg.Data.BudgetsFile
	}
	st := store.New(cfg.Data.CatalogFile, budgetsFile, logging.NewLogrusAdapterFromLogger(log))

	categories, err := st.LoadCatalog()
	if err != nil {
		log.Fatalf("Error loading category catalog: %v", err)
	}
	budgets, err := st.LoadBudgets(categories)
	if err != nil {
		log.Fatalf("Error loading budgets: %v", err)
	}
	return categories, budgets
}

// WriteTransactions writes transactions as CSV to the output file, or to
// stdout when no file is given.
func WriteTransactions(outputFile string, transactions []models.Transaction, log *logrus.Logger) {
	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			log.Fatalf("Error creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := csvio.WriteTransactions(out, transactions); err != nil {
		log.Fatalf("Error writing transactions: %v", err)
	}

	if outputFile != "" {
		log.WithFields(logrus.Fields{
			"output_file": outputFile,
			"count":       len(transactions),
		}).Info("Wrote transactions")
	}
}
