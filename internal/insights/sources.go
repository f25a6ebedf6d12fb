package insights

// Reference links attached to generated advice. Each insight or advice tip
// cites the article its recommendation is based on.
const (
	sourceSavings          = "https://www.investopedia.com/articles/personal-finance/100516/importance-saving-money/"
	sourceInvesting        = "https://www.nerdwallet.com/article/investing/how-to-start-investing"
	sourceBudgeting        = "https://www.mint.com/budgeting-3/50-30-20-budget-rule"
	sourceFoodSavings      = "https://www.consumer.gov/articles/1002-making-food-dollars-stretch"
	sourceTransportSavings = "https://www.consumer.gov/articles/1002-saving-money-on-transportation"
	sourceEmergencyFund    = "https://www.nerdwallet.com/article/banking/emergency-fund-how-much-to-build"
	sourceDebtManagement   = "https://www.nerdwallet.com/article/finance/debt-management-strategies"
	sourceRetirement       = "https://www.investopedia.com/retirement-planning-4689695"
)
