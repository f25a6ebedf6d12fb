// Package insights derives advisory messages from aggregated transaction
// data. Generation is a pure projection: rules are evaluated independently,
// every applicable rule emits, and priority insights sort first with
// insertion order preserved otherwise.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"finsight/internal/aggregator"
	"finsight/internal/models"
)

// Fixed rule thresholds. These are deliberately not configurable.
var (
	investmentSurplusMin = decimal.NewFromInt(100)
	foodCalloutMin       = decimal.NewFromInt(200)
	transportCalloutMin  = decimal.NewFromInt(100)
	budgetWarningRatio   = decimal.NewFromFloat(0.8)
	debtExpenseRatio     = decimal.NewFromFloat(0.7)
)

const trendChangeMinPercent = 10.0

// Generate produces the ordered insight list for a summary. An empty
// transaction list yields an empty list; there are no error conditions.
func Generate(summary aggregator.Summary, categories []models.Category, budgets []models.Budget) []models.Insight {
	if summary.TransactionCount == 0 {
		return nil
	}

	var result []models.Insight

	if insight, ok := investmentOpportunity(summary); ok {
		result = append(result, insight)
	}
	result = append(result, overview(summary))
	if insight, ok := savingsRateAnalysis(summary); ok {
		result = append(result, insight)
	}
	result = append(result, budgetInsights(summary, categories, budgets)...)
	if insight, ok := monthlyTrend(summary); ok {
		result = append(result, insight)
	}
	result = append(result, categoryCallouts(summary)...)
	if insight, ok := personalAdvisor(summary, categories, budgets); ok {
		result = append(result, insight)
	}

	// Priority insights first, insertion order otherwise.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority && !result[j].Priority
	})

	return result
}

// investmentOpportunity fires when the monthly surplus clears the fixed
// threshold.
func investmentOpportunity(summary aggregator.Summary) (models.Insight, bool) {
	surplus := summary.Surplus()
	if !surplus.GreaterThan(investmentSurplusMin) {
		return models.Insight{}, false
	}
	return models.Insight{
		Title: "Investment Opportunity",
		Message: fmt.Sprintf("You have $%s in monthly savings. Consider:\n"+
			"• Opening a high-yield savings account\n"+
			"• Starting a retirement fund\n"+
			"• Investing in index funds\n"+
			"• Building an emergency fund", surplus.StringFixed(2)),
		Severity: models.SeverityInfo,
		Priority: true,
		Source:   sourceInvesting,
	}, true
}

// overview is always emitted and states income, expenses and the surplus or
// deficit.
func overview(summary aggregator.Summary) models.Insight {
	saving := summary.TotalIncome.GreaterThan(summary.TotalExpenses)

	var outcome string
	severity := models.SeverityAlert
	if saving {
		severity = models.SeverityInfo
		surplus := summary.Surplus()
		percent, _ := surplus.Div(summary.TotalIncome).Mul(decimal.NewFromInt(100)).Float64()
		outcome = fmt.Sprintf("You're saving $%s (%.1f%% of income)", surplus.StringFixed(2), percent)
	} else {
		deficit := summary.TotalExpenses.Sub(summary.TotalIncome)
		outcome = fmt.Sprintf("You're overspending by $%s", deficit.StringFixed(2))
	}

	return models.Insight{
		Title: "Financial Health Overview",
		Message: fmt.Sprintf("Your total income is $%s and total expenses are $%s. %s",
			summary.TotalIncome.StringFixed(2), summary.TotalExpenses.StringFixed(2), outcome),
		Severity: severity,
		Source:   sourceSavings,
	}
}

// savingsRateAnalysis bands the savings rate: >=20% positive, 10-20%
// warning, below 10% alert. Emitted only when there is income.
func savingsRateAnalysis(summary aggregator.Summary) (models.Insight, bool) {
	if summary.SavingsRate == nil {
		return models.Insight{}, false
	}
	rate := *summary.SavingsRate

	var message, severity string
	switch {
	case rate >= 20:
		message = "Excellent! You're following the 50/30/20 rule. Consider investing your savings for long-term growth."
		severity = models.SeverityInfo
	case rate >= 10:
		message = "You're saving 10-20% of your income. Try to increase it to 20% for better financial security."
		severity = models.SeverityWarning
	default:
		message = "Consider reducing discretionary spending to increase your savings rate to at least 20%."
		severity = models.SeverityAlert
	}

	return models.Insight{
		Title:    "Savings Rate Analysis",
		Message:  message,
		Severity: severity,
		Source:   sourceBudgeting,
	}, true
}

// budgetInsights checks every budgeted category against its debit total:
// over 100% of budget is an alert, over 80% a warning. Categories are
// visited in catalog order so output is byte-stable.
func budgetInsights(summary aggregator.Summary, categories []models.Category, budgets []models.Budget) []models.Insight {
	var result []models.Insight

	for _, category := range categories {
		budget := models.BudgetFor(budgets, category.ID)
		if !budget.IsPositive() {
			continue
		}
		spent := summary.CategoryTotal(category.ID)
		if spent.IsZero() {
			continue
		}

		if spent.GreaterThan(budget) {
			overage := spent.Sub(budget)
			result = append(result, models.Insight{
				Title: fmt.Sprintf("Budget Alert: %s", category.Name),
				Message: fmt.Sprintf("You've exceeded your %s budget by $%s. %s",
					category.Name, overage.StringFixed(2), overBudgetTip(category.ID)),
				Severity: models.SeverityAlert,
				Source:   overBudgetSource(category.ID),
			})
		} else if spent.GreaterThan(budget.Mul(budgetWarningRatio)) {
			percent, _ := spent.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
			result = append(result, models.Insight{
				Title: fmt.Sprintf("Approaching Budget Limit: %s", category.Name),
				Message: fmt.Sprintf("You've used %.1f%% of your %s budget. Consider reviewing your spending to stay within limits.",
					percent, category.Name),
				Severity: models.SeverityWarning,
				Source:   sourceBudgeting,
			})
		}
	}

	return result
}

func overBudgetTip(categoryID string) string {
	switch categoryID {
	case models.CategoryFood:
		return "Consider meal planning and cooking at home to reduce expenses."
	case models.CategoryTransport:
		return "Look into carpooling or public transport options to save on commuting costs."
	case models.CategoryEntertainment:
		return "Try free or low-cost entertainment options like local events or streaming services."
	case models.CategoryShopping:
		return "Wait for sales or use cashback apps for better deals."
	default:
		return "Review your spending in this category and identify non-essential expenses."
	}
}

func overBudgetSource(categoryID string) string {
	switch categoryID {
	case models.CategoryFood:
		return sourceFoodSavings
	case models.CategoryTransport:
		return sourceTransportSavings
	default:
		return sourceBudgeting
	}
}

// monthlyTrend compares the two chronologically latest months and fires when
// spending moved by more than 10% either way.
func monthlyTrend(summary aggregator.Summary) (models.Insight, bool) {
	if len(summary.Monthly) < 2 {
		return models.Insight{}, false
	}

	current := summary.Monthly[len(summary.Monthly)-1]
	previous := summary.Monthly[len(summary.Monthly)-2]

	change, _ := current.Total.Sub(previous.Total).
		Div(previous.Total).
		Mul(decimal.NewFromInt(100)).
		Float64()

	if change <= trendChangeMinPercent && change >= -trendChangeMinPercent {
		return models.Insight{}, false
	}

	direction := "decreased"
	severity := models.SeverityInfo
	followup := "Great job! Keep up the good work on managing your expenses."
	if change > 0 {
		direction = "increased"
		severity = models.SeverityAlert
		followup = "Review your recent expenses to identify any unnecessary spending."
	}

	magnitude := change
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return models.Insight{
		Title: "Monthly Spending Trend",
		Message: fmt.Sprintf("Your spending has %s by %.1f%% compared to last month. %s",
			direction, magnitude, followup),
		Severity: severity,
		Source:   sourceBudgeting,
	}, true
}

// categoryCallouts are the fixed-threshold savings suggestions for food and
// transport spend.
func categoryCallouts(summary aggregator.Summary) []models.Insight {
	var result []models.Insight

	if food := summary.CategoryTotal(models.CategoryFood); food.GreaterThan(foodCalloutMin) {
		result = append(result, models.Insight{
			Title: "Food & Dining Savings",
			Message: fmt.Sprintf("You've spent $%s on food. Consider:\n"+
				"• Meal prepping for the week\n"+
				"• Using grocery delivery services for better deals\n"+
				"• Taking advantage of restaurant loyalty programs\n"+
				"• Cooking at home more often", food.StringFixed(2)),
			Severity: models.SeverityInfo,
			Source:   sourceFoodSavings,
		})
	}

	if transport := summary.CategoryTotal(models.CategoryTransport); transport.GreaterThan(transportCalloutMin) {
		result = append(result, models.Insight{
			Title: "Transportation Savings",
			Message: fmt.Sprintf("You've spent $%s on transport. Consider:\n"+
				"• Using public transport or carpooling\n"+
				"• Maintaining your vehicle regularly to prevent costly repairs\n"+
				"• Using fuel rewards programs\n"+
				"• Walking or cycling for short distances", transport.StringFixed(2)),
			Severity: models.SeverityInfo,
			Source:   sourceTransportSavings,
		})
	}

	return result
}

// personalAdvisor aggregates the individual advice tips into one priority
// insight. The insight is omitted entirely when no tip triggers.
func personalAdvisor(summary aggregator.Summary, categories []models.Category, budgets []models.Budget) (models.Insight, bool) {
	// A missing savings rate (no income) is treated as zero for advice
	// banding; the rate value itself never appears in tip text.
	rate := 0.0
	if summary.SavingsRate != nil {
		rate = *summary.SavingsRate
	}

	var advice []models.AdviceTip

	if rate < 20 {
		advice = append(advice, models.AdviceTip{
			Title:  "Increase Your Savings",
			Tip:    "Try to save at least 20% of your income. Consider automating your savings by setting up automatic transfers to a savings account.",
			Source: sourceSavings,
		})
	}

	if summary.TotalIncome.IsPositive() {
		advice = append(advice, models.AdviceTip{
			Title:  "Build Emergency Fund",
			Tip:    "Aim to save 3-6 months of living expenses in an easily accessible emergency fund.",
			Source: sourceEmergencyFund,
		})
	}

	if over := overBudgetCategories(summary, categories, budgets); len(over) > 0 {
		advice = append(advice, models.AdviceTip{
			Title:  "Budget Management",
			Tip:    fmt.Sprintf("You're over budget in %s. Review these categories and look for ways to reduce spending.", strings.Join(over, ", ")),
			Source: sourceBudgeting,
		})
	}

	if rate > 20 {
		advice = append(advice, models.AdviceTip{
			Title:  "Investment Opportunities",
			Tip:    "Consider investing your extra savings in a diversified portfolio. Look into index funds or retirement accounts for long-term growth.",
			Source: sourceInvesting,
		})
	}

	if summary.TotalExpenses.GreaterThan(summary.TotalIncome.Mul(debtExpenseRatio)) {
		advice = append(advice, models.AdviceTip{
			Title:  "Debt Management",
			Tip:    "Your expenses are high relative to income. Consider debt consolidation or creating a debt repayment plan.",
			Source: sourceDebtManagement,
		})
	}

	if summary.TotalIncome.GreaterThan(summary.TotalExpenses) {
		advice = append(advice, models.AdviceTip{
			Title:  "Retirement Planning",
			Tip:    "Make sure you're contributing to retirement accounts. Consider increasing contributions if you're saving more than 20% of income.",
			Source: sourceRetirement,
		})
	}

	if len(advice) == 0 {
		return models.Insight{}, false
	}

	return models.Insight{
		Title:    "Your Personal Finance Advisor",
		Message:  "Based on your spending patterns and financial goals, here are some personalized recommendations:",
		Severity: models.SeverityInfo,
		Priority: true,
		Advice:   advice,
	}, true
}

// overBudgetCategories returns the display names of budgeted categories whose
// debit total exceeds their budget, in catalog order.
func overBudgetCategories(summary aggregator.Summary, categories []models.Category, budgets []models.Budget) []string {
	var names []string
	for _, category := range categories {
		budget := models.BudgetFor(budgets, category.ID)
		if budget.IsPositive() && summary.CategoryTotal(category.ID).GreaterThan(budget) {
			names = append(names, category.Name)
		}
	}
	return names
}
