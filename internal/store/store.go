// Package store provides YAML-backed loading and saving of the category
// catalog and the per-category budget set.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"finsight/internal/catalog"
	"finsight/internal/logging"
	"finsight/internal/models"
)

// File permissions for persisted data files.
const (
	permDataFile  = 0o600
	permDirectory = 0o750
)

// categoryRecord is the on-disk shape of one catalog entry. Amounts are
// stored as plain numbers in YAML and converted to decimals on load.
type categoryRecord struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Color         string  `yaml:"color"`
	DefaultBudget float64 `yaml:"default_budget"`
}

type catalogFile struct {
	Categories []categoryRecord `yaml:"categories"`
}

type budgetRecord struct {
	CategoryID string  `yaml:"category_id"`
	Amount     float64 `yaml:"amount"`
}

type budgetsFile struct {
	Budgets []budgetRecord `yaml:"budgets"`
}

// Store manages loading and saving of catalog and budget data.
type Store struct {
	CatalogFile string
	BudgetsFile string
	logger      logging.Logger
}

// New creates a store for the given file names. Relative names are resolved
// against the standard config locations.
func New(catalogFile, budgetsFile string, logger logging.Logger) *Store {
	return &Store{
		CatalogFile: catalogFile,
		BudgetsFile: budgetsFile,
		logger:      logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the current directory, ./config, and ~/.config/finsight.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "finsight", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCatalog loads the category catalog from the YAML file, falling back to
// the built-in default catalog when no file exists.
func (s *Store) LoadCatalog() ([]models.Category, error) {
	filename := s.CatalogFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Catalog file not found, using default catalog",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return catalog.Default(), nil
		}
		return nil, fmt.Errorf("error resolving catalog file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog file %s: %w", path, err)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse catalog file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(parsed.Categories))
	categories := make([]models.Category, 0, len(parsed.Categories))
	for _, record := range parsed.Categories {
		if record.ID == "" {
			return nil, fmt.Errorf("catalog file %s: category with empty id", path)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("catalog file %s: duplicate category id %q", path, record.ID)
		}
		seen[record.ID] = true
		categories = append(categories, models.Category{
			ID:            record.ID,
			Name:          record.Name,
			Color:         record.Color,
			DefaultBudget: decimal.NewFromFloat(record.DefaultBudget),
		})
	}

	s.logger.Info("Loaded category catalog",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})

	return categories, nil
}

// LoadBudgets loads the budget set from the YAML file. When no file exists
// the budgets are derived from the catalog's default budgets. Duplicate
// category ids collapse via upsert so the at-most-one invariant holds even
// for hand-edited files.
func (s *Store) LoadBudgets(categories []models.Category) ([]models.Budget, error) {
	filename := s.BudgetsFile
	if filename == "" {
		filename = "budgets.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Budgets file not found, deriving from catalog defaults",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return catalog.DefaultBudgets(categories), nil
		}
		return nil, fmt.Errorf("error resolving budgets file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read budgets file %s: %w", path, err)
	}

	var parsed budgetsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse budgets file %s: %w", path, err)
	}

	var budgets []models.Budget
	for _, record := range parsed.Budgets {
		budgets = models.UpsertBudget(budgets, models.Budget{
			CategoryID: record.CategoryID,
			Amount:     decimal.NewFromFloat(record.Amount),
		})
	}

	s.logger.Info("Loaded budgets",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(budgets)})

	return budgets, nil
}

// SaveBudgets writes the budget set back to the YAML file.
func (s *Store) SaveBudgets(budgets []models.Budget) error {
	filename := s.BudgetsFile
	if filename == "" {
		filename = "budgets.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		// New file: write next to the other config files in cwd.
		path = filename
	}

	records := make([]budgetRecord, 0, len(budgets))
	for _, b := range budgets {
		amount, _ := b.Amount.Float64()
		records = append(records, budgetRecord{
			CategoryID: b.CategoryID,
			Amount:     amount,
		})
	}

	data, err := yaml.Marshal(budgetsFile{Budgets: records})
	if err != nil {
		return fmt.Errorf("could not marshal budgets: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, permDirectory); err != nil {
			return fmt.Errorf("could not create budgets directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, permDataFile); err != nil {
		return fmt.Errorf("could not write budgets file %s: %w", path, err)
	}

	s.logger.Info("Saved budgets",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(budgets)})

	return nil
}
