// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol is the reference record of a tradable instrument in the mock
// universe. Records are immutable once seeded.
type Symbol struct {
	Code          string  // Ticker symbol (e.g., "AAPL")
	Name          string  // Display name
	Price         float64 // Current reference price
	Change        float64 // Absolute change since previous close
	ChangePercent float64 // Percent change since previous close
	Volume        int64   // Traded volume
	MarketCap     int64   // Market capitalization in USD
	IsActive      bool
	SortKey       int // Universe order
}
