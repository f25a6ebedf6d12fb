package normalizer

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/internal/catalog"
	"finsight/internal/classifier"
	"finsight/internal/finerror"
	"finsight/internal/logging"
	"finsight/internal/models"
)

var fixedTime = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	n := New(classifier.New(), catalog.Default(), &logging.MockLogger{})
	n.Now = func() time.Time { return fixedTime }
	counter := 0
	n.NewID = func() string {
		counter++
		return fmt.Sprintf("tx-%d", counter)
	}
	return n
}

func TestNormalize_Receipt(t *testing.T) {
	n := newTestNormalizer()

	transactions, err := n.Normalize([]byte(`{"amount": 42.50, "merchant": "Whole Foods"}`), SourceReceipt)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.True(t, decimal.NewFromFloat(-42.50).Equal(tx.Amount))
	assert.Equal(t, models.CategoryShopping, tx.CategoryID)
	assert.Equal(t, "Whole Foods", tx.Description)
	assert.Equal(t, models.PaymentMethodCard, tx.PaymentMethod)
	assert.Equal(t, fixedTime, tx.Date)
	assert.Equal(t, "tx-1", tx.ID)
}

func TestNormalize_ReceiptAmountForcedNegative(t *testing.T) {
	n := newTestNormalizer()

	// Receipts are always expenses, whatever sign the model returned.
	transactions, err := n.Normalize([]byte(`{"amount": -17.20, "merchant": "Starbucks"}`), SourceReceipt)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.True(t, decimal.NewFromFloat(-17.20).Equal(transactions[0].Amount))
	assert.Equal(t, models.CategoryFood, transactions[0].CategoryID)
}

func TestNormalize_ReceiptProvidedCategory(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "category by id",
			payload:  `{"amount": 10, "merchant": "Some Shop", "category": "travel"}`,
			expected: models.CategoryTravel,
		},
		{
			name:     "category by display name",
			payload:  `{"amount": 10, "merchant": "Some Shop", "category": "Healthcare"}`,
			expected: models.CategoryHealth,
		},
		{
			name:     "unknown category falls back to classifier",
			payload:  `{"amount": 10, "merchant": "Starbucks", "category": "nonsense"}`,
			expected: models.CategoryFood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer()
			transactions, err := n.Normalize([]byte(tt.payload), SourceReceipt)
			require.NoError(t, err)
			require.Len(t, transactions, 1)
			assert.Equal(t, tt.expected, transactions[0].CategoryID)
		})
	}
}

func TestNormalize_ReceiptMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing amount", `{"merchant": "Whole Foods"}`},
		{"missing merchant", `{"amount": 42.50}`},
		{"blank merchant", `{"amount": 42.50, "merchant": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer()
			_, err := n.Normalize([]byte(tt.payload), SourceReceipt)
			var malformed *finerror.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, malformed.Error(), "missing amount or merchant")
		})
	}
}

func TestNormalize_StatementIncomeTagging(t *testing.T) {
	n := newTestNormalizer()

	// Positive amounts are income regardless of description text.
	payload := `{"transactions": [
		{"date": "2025-03-01", "description": "Starbucks refund", "amount": 12.50},
		{"date": "2025-03-02", "description": "Starbucks", "amount": -4.80}
	]}`

	transactions, err := n.Normalize([]byte(payload), SourceStatement)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, models.CategoryIncome, transactions[0].CategoryID)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(transactions[0].Amount))

	assert.Equal(t, models.CategoryFood, transactions[1].CategoryID)
	assert.True(t, decimal.NewFromFloat(-4.80).Equal(transactions[1].Amount))

	for _, tx := range transactions {
		assert.Equal(t, models.PaymentMethodBank, tx.PaymentMethod)
	}
}

func TestNormalize_StatementDates(t *testing.T) {
	n := newTestNormalizer()

	payload := `{"transactions": [
		{"date": "2025-02-28", "description": "Grocery run", "amount": -30},
		{"description": "No date entry", "amount": -10},
		{"date": "not-a-date", "description": "Bad date entry", "amount": -5}
	]}`

	transactions, err := n.Normalize([]byte(payload), SourceStatement)
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), transactions[0].Date)
	assert.Equal(t, fixedTime, transactions[1].Date)
	assert.Equal(t, fixedTime, transactions[2].Date)
}

func TestNormalize_StatementMissingTransactions(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"transactions not a list", `{"transactions": "nope"}`},
		{"transactions is object", `{"transactions": {"a": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer()
			_, err := n.Normalize([]byte(tt.payload), SourceStatement)
			var malformed *finerror.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, malformed.Error(), "transactions is not an array")
		})
	}
}

func TestNormalize_StatementMissingAmountAbortsBatch(t *testing.T) {
	n := newTestNormalizer()

	payload := `{"transactions": [
		{"date": "2025-03-01", "description": "Fine entry", "amount": -30},
		{"date": "2025-03-02", "description": "Broken entry"}
	]}`

	transactions, err := n.Normalize([]byte(payload), SourceStatement)
	assert.Nil(t, transactions)

	var invalid *finerror.InvalidTransactionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "Broken entry")
}

func TestNormalize_InvalidJSON(t *testing.T) {
	n := newTestNormalizer()

	_, err := n.Normalize([]byte(`{not json`), SourceStatement)
	var malformed *finerror.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "invalid JSON")
}

func TestNormalize_NonObjectPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"array", `[1, 2, 3]`},
		{"string", `"hello"`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer()
			_, err := n.Normalize([]byte(tt.payload), SourceReceipt)
			var unsupported *finerror.UnsupportedInputError
			require.ErrorAs(t, err, &unsupported)
		})
	}
}

func TestNormalize_UnknownSource(t *testing.T) {
	n := newTestNormalizer()

	_, err := n.Normalize([]byte(`{}`), Source("invoice"))
	var unsupported *finerror.UnsupportedInputError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, unsupported.Error(), "invoice")
}

func TestNormalize_StripsMarkdownFences(t *testing.T) {
	n := newTestNormalizer()

	raw := "```json\n{\"amount\": 9.99, \"merchant\": \"Netflix\"}\n```"
	transactions, err := n.Normalize([]byte(raw), SourceReceipt)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.CategoryEntertainment, transactions[0].CategoryID)
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced no language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}\n\n", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanModelJSON(tt.input))
		})
	}
}
