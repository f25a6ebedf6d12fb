package models

// Payment methods
const (
	PaymentMethodCard  = "card"
	PaymentMethodCash  = "cash"
	PaymentMethodBank  = "bank"
	PaymentMethodOther = "other"
)

// Sentinel category ids. CategoryOther is the fallback for descriptions no
// keyword rule matches; CategoryIncome tags credit entries from statements.
const (
	CategoryOther  = "other"
	CategoryIncome = "income"
)

// Well-known catalog category ids
const (
	CategoryFood          = "food"
	CategoryRent          = "rent"
	CategoryTransport     = "transport"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryShopping      = "shopping"
	CategoryTravel        = "travel"
	CategoryEducation     = "education"
)

// Insight severities
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityAlert   = "alert"
)
