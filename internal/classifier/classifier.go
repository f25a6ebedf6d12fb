// Package classifier maps free-text merchant and transaction descriptions to
// category ids using ordered keyword matching.
package classifier

import (
	"strings"

	"finsight/internal/models"
)

// Rule binds a single keyword to a category id.
type Rule struct {
	Keyword    string
	CategoryID string
}

// DefaultRules is the fixed, ordered keyword table. Order is load-bearing:
// the first keyword found as a substring of the description wins, so earlier
// rules take precedence over later ones. The table must stay an ordered
// slice, never a map.
var DefaultRules = []Rule{
	{"starbucks", models.CategoryFood},
	{"coffee", models.CategoryFood},
	{"uber", models.CategoryTransport},
	{"rent", models.CategoryUtilities},
	{"grocery", models.CategoryShopping},
	{"electricity", models.CategoryUtilities},
	{"netflix", models.CategoryEntertainment},
	{"restaurant", models.CategoryFood},
	{"salary", models.CategoryOther},
	{"bill", models.CategoryUtilities},
	{"subscription", models.CategoryEntertainment},
	{"whole foods", models.CategoryShopping},
	{"supermarket", models.CategoryShopping},
	{"amazon", models.CategoryShopping},
	{"pharmacy", models.CategoryHealth},
	{"hospital", models.CategoryHealth},
	{"gym", models.CategoryHealth},
	{"taxi", models.CategoryTransport},
	{"fuel", models.CategoryTransport},
	{"parking", models.CategoryTransport},
	{"hotel", models.CategoryTravel},
	{"flight", models.CategoryTravel},
	{"airline", models.CategoryTravel},
	{"tuition", models.CategoryEducation},
	{"course", models.CategoryEducation},
	{"spotify", models.CategoryEntertainment},
	{"cinema", models.CategoryEntertainment},
}

// Classifier performs first-match-wins keyword categorization over an
// ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier with the default rule table.
func New() *Classifier {
	return NewWithRules(DefaultRules)
}

// NewWithRules creates a Classifier with a custom ordered rule table.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the category id for a free-text description. It is a
// total, pure function: any input, including the empty string, yields a
// category, falling back to "other" when no keyword matches. Classification
// is advisory and never fails.
func (c *Classifier) Classify(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range c.rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.CategoryID
		}
	}
	return models.CategoryOther
}
