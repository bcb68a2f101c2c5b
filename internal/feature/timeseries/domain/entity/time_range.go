package entity

import (
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/timeseries/domain"
)

// TimeRange selects how many historical days are generated.
type TimeRange string

const (
	Range1D TimeRange = "1d"
	Range1W TimeRange = "1w"
	Range1M TimeRange = "1m"
	Range3M TimeRange = "3m"
	Range6M TimeRange = "6m"
	Range1Y TimeRange = "1y"
	Range5Y TimeRange = "5y"

	// DefaultRange is used when the caller does not pick one.
	DefaultRange = Range1M
)

var rangeDays = map[TimeRange]int{
	Range1D: 1,
	Range1W: 7,
	Range1M: 30,
	Range3M: 90,
	Range6M: 180,
	Range1Y: 365,
	Range5Y: 1825,
}

// AllRanges lists the supported ranges from shortest to longest.
func AllRanges() []TimeRange {
	return []TimeRange{Range1D, Range1W, Range1M, Range3M, Range6M, Range1Y, Range5Y}
}

// Days returns the number of historical points for r, or 0 if r is unknown.
func (r TimeRange) Days() int {
	return rangeDays[r]
}

// IsLongest reports whether r is the longest tier, which uses the steeper trend.
func (r TimeRange) IsLongest() bool {
	return r == Range5Y
}

// Valid reports whether r is one of the supported tags.
func (r TimeRange) Valid() bool {
	_, ok := rangeDays[r]
	return ok
}

// ParseTimeRange parses a tag case-insensitively. An empty tag yields DefaultRange.
func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRange, nil
	}
	r := TimeRange(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTimeRange, s)
	}
	return r, nil
}
