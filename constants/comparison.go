package constants

// ComparisonType is the canonical kind for rows in comparisons.
type ComparisonType string

// Stable values (store these exact strings in DB).
const (
	MarketAnalysis  ComparisonType = "market_analysis"
	CompetitorQuote ComparisonType = "competitor_quote"
)

// ComparisonTypes holds the allowed values for the comparison_type field.
var ComparisonTypes = []string{string(MarketAnalysis), string(CompetitorQuote)}
