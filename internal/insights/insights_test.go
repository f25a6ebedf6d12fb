package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/internal/aggregator"
	"finsight/internal/catalog"
	"finsight/internal/models"
)

func summaryWith(income, expenses float64, count int) aggregator.Summary {
	s := aggregator.Summary{
		TotalIncome:      decimal.NewFromFloat(income),
		TotalExpenses:    decimal.NewFromFloat(expenses),
		ByCategory:       map[string]decimal.Decimal{},
		TransactionCount: count,
	}
	if s.TotalIncome.IsPositive() {
		rate, _ := s.Surplus().Div(s.TotalIncome).Mul(decimal.NewFromInt(100)).Float64()
		s.SavingsRate = &rate
	}
	return s
}

func findInsight(insights []models.Insight, title string) (models.Insight, bool) {
	for _, insight := range insights {
		if insight.Title == title {
			return insight, true
		}
	}
	return models.Insight{}, false
}

func TestGenerate_EmptySummary(t *testing.T) {
	result := Generate(aggregator.Summary{}, catalog.Default(), nil)
	assert.Empty(t, result)
}

func TestGenerate_BudgetAlert(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-150), CategoryID: models.CategoryFood, Date: march},
	})

	categories := catalog.Default()
	budgets := []models.Budget{{CategoryID: models.CategoryFood, Amount: decimal.NewFromInt(100)}}

	result := Generate(summary, categories, budgets)

	alert, ok := findInsight(result, "Budget Alert: Food & Dining")
	require.True(t, ok)
	assert.Equal(t, models.SeverityAlert, alert.Severity)
	assert.Contains(t, alert.Message, "$50.00")
	assert.Contains(t, alert.Message, "meal planning")
	assert.Equal(t, sourceFoodSavings, alert.Source)
}

func TestGenerate_BudgetWarningAt80Percent(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-85), CategoryID: models.CategoryHealth, Date: march},
	})

	budgets := []models.Budget{{CategoryID: models.CategoryHealth, Amount: decimal.NewFromInt(100)}}
	result := Generate(summary, catalog.Default(), budgets)

	warning, ok := findInsight(result, "Approaching Budget Limit: Healthcare")
	require.True(t, ok)
	assert.Equal(t, models.SeverityWarning, warning.Severity)
	assert.Contains(t, warning.Message, "85.0%")
}

func TestGenerate_NoBudgetInsightWithoutSpend(t *testing.T) {
	summary := summaryWith(1000, 0, 1)
	result := Generate(summary, catalog.Default(), catalog.DefaultBudgets(catalog.Default()))

	for _, insight := range result {
		assert.NotContains(t, insight.Title, "Budget Alert")
		assert.NotContains(t, insight.Title, "Approaching Budget Limit")
	}
}

func TestGenerate_OverviewSaving(t *testing.T) {
	summary := summaryWith(1000, 400, 5)
	result := Generate(summary, catalog.Default(), nil)

	overview, ok := findInsight(result, "Financial Health Overview")
	require.True(t, ok)
	assert.Equal(t, models.SeverityInfo, overview.Severity)
	assert.Contains(t, overview.Message, "You're saving $600.00 (60.0% of income)")
}

func TestGenerate_OverviewOverspending(t *testing.T) {
	summary := summaryWith(100, 250, 3)
	result := Generate(summary, catalog.Default(), nil)

	overview, ok := findInsight(result, "Financial Health Overview")
	require.True(t, ok)
	assert.Equal(t, models.SeverityAlert, overview.Severity)
	assert.Contains(t, overview.Message, "You're overspending by $150.00")
}

func TestGenerate_SavingsRateBands(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses float64
		severity string
	}{
		{"excellent at 20 percent", 1000, 800, models.SeverityInfo},
		{"warning between 10 and 20", 1000, 850, models.SeverityWarning},
		{"alert below 10", 1000, 950, models.SeverityAlert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := summaryWith(tt.income, tt.expenses, 2)
			result := Generate(summary, catalog.Default(), nil)

			analysis, ok := findInsight(result, "Savings Rate Analysis")
			require.True(t, ok)
			assert.Equal(t, tt.severity, analysis.Severity)
		})
	}
}

func TestGenerate_NoSavingsRateWithoutIncome(t *testing.T) {
	summary := summaryWith(0, 300, 2)
	result := Generate(summary, catalog.Default(), nil)

	_, ok := findInsight(result, "Savings Rate Analysis")
	assert.False(t, ok)
}

func TestGenerate_InvestmentOpportunity(t *testing.T) {
	summary := summaryWith(1000, 500, 2)
	result := Generate(summary, catalog.Default(), nil)

	opportunity, ok := findInsight(result, "Investment Opportunity")
	require.True(t, ok)
	assert.True(t, opportunity.Priority)
	assert.Contains(t, opportunity.Message, "$500.00")

	// Surplus at exactly the threshold must not fire.
	result = Generate(summaryWith(1000, 900, 2), catalog.Default(), nil)
	_, ok = findInsight(result, "Investment Opportunity")
	assert.False(t, ok)
}

func TestGenerate_MonthlyTrend(t *testing.T) {
	january := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)

	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-100), CategoryID: models.CategoryOther, Date: january},
		{ID: "2", Amount: decimal.NewFromInt(-150), CategoryID: models.CategoryOther, Date: february},
	})

	result := Generate(summary, catalog.Default(), nil)

	trend, ok := findInsight(result, "Monthly Spending Trend")
	require.True(t, ok)
	assert.Equal(t, models.SeverityAlert, trend.Severity)
	assert.Contains(t, trend.Message, "increased by 50.0%")
}

func TestGenerate_MonthlyTrendDecrease(t *testing.T) {
	january := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)

	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-200), CategoryID: models.CategoryOther, Date: january},
		{ID: "2", Amount: decimal.NewFromInt(-100), CategoryID: models.CategoryOther, Date: february},
	})

	result := Generate(summary, catalog.Default(), nil)

	trend, ok := findInsight(result, "Monthly Spending Trend")
	require.True(t, ok)
	assert.Equal(t, models.SeverityInfo, trend.Severity)
	assert.Contains(t, trend.Message, "decreased by 50.0%")
}

func TestGenerate_MonthlyTrendSmallChangeSilent(t *testing.T) {
	january := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	february := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)

	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-100), CategoryID: models.CategoryOther, Date: january},
		{ID: "2", Amount: decimal.NewFromInt(-105), CategoryID: models.CategoryOther, Date: february},
	})

	result := Generate(summary, catalog.Default(), nil)

	_, ok := findInsight(result, "Monthly Spending Trend")
	assert.False(t, ok)
}

func TestGenerate_CategoryCallouts(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	summary := aggregator.Aggregate([]models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(-250), CategoryID: models.CategoryFood, Date: march},
		{ID: "2", Amount: decimal.NewFromInt(-120), CategoryID: models.CategoryTransport, Date: march},
	})

	result := Generate(summary, catalog.Default(), nil)

	food, ok := findInsight(result, "Food & Dining Savings")
	require.True(t, ok)
	assert.Contains(t, food.Message, "$250.00")

	transport, ok := findInsight(result, "Transportation Savings")
	require.True(t, ok)
	assert.Contains(t, transport.Message, "$120.00")
}

func TestGenerate_PersonalAdvisor(t *testing.T) {
	summary := summaryWith(1000, 400, 4)
	result := Generate(summary, catalog.Default(), nil)

	advisor, ok := findInsight(result, "Your Personal Finance Advisor")
	require.True(t, ok)
	assert.True(t, advisor.Priority)
	require.NotEmpty(t, advisor.Advice)

	titles := make([]string, 0, len(advisor.Advice))
	for _, tip := range advisor.Advice {
		titles = append(titles, tip.Title)
	}
	// 60% savings rate: investing and retirement fire, "increase savings" does not.
	assert.Contains(t, titles, "Build Emergency Fund")
	assert.Contains(t, titles, "Investment Opportunities")
	assert.Contains(t, titles, "Retirement Planning")
	assert.NotContains(t, titles, "Increase Your Savings")
	assert.NotContains(t, titles, "Debt Management")
}

func TestGenerate_PersonalAdvisorDebtTip(t *testing.T) {
	summary := summaryWith(1000, 800, 4)
	result := Generate(summary, catalog.Default(), nil)

	advisor, ok := findInsight(result, "Your Personal Finance Advisor")
	require.True(t, ok)

	var found bool
	for _, tip := range advisor.Advice {
		if tip.Title == "Debt Management" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerate_PriorityInsightsFirst(t *testing.T) {
	summary := summaryWith(1000, 400, 4)
	result := Generate(summary, catalog.Default(), nil)
	require.NotEmpty(t, result)

	seenNonPriority := false
	for _, insight := range result {
		if !insight.Priority {
			seenNonPriority = true
		} else {
			assert.False(t, seenNonPriority, "priority insight %q appeared after a non-priority one", insight.Title)
		}
	}

	// Among priority insights the emission order holds.
	assert.Equal(t, "Investment Opportunity", result[0].Title)
	assert.Equal(t, "Your Personal Finance Advisor", result[1].Title)
}

func TestGenerate_Idempotent(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{ID: "1", Amount: decimal.NewFromInt(2000), CategoryID: models.CategoryIncome, Date: march},
		{ID: "2", Amount: decimal.NewFromInt(-250), CategoryID: models.CategoryFood, Date: march},
		{ID: "3", Amount: decimal.NewFromInt(-120), CategoryID: models.CategoryTransport, Date: march},
	}
	categories := catalog.Default()
	budgets := catalog.DefaultBudgets(categories)

	summary := aggregator.Aggregate(transactions)
	first := Generate(summary, categories, budgets)
	second := Generate(summary, categories, budgets)

	assert.Equal(t, first, second)
}
