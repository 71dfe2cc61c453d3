package etfwatch

import "fmt"

// Market identifies one of the two supported trading venues.
type Market string

const (
	// Domestic is the home exchange, securities keyed by 6-digit numeric code.
	Domestic Market = "KR"
	// Foreign is the cross-border exchange, securities keyed by alphanumeric ticker.
	Foreign Market = "US"
)

// Currency returns the currency securities of this market are denominated in.
func (m Market) Currency() string {
	if m == Foreign {
		return "USD"
	}
	return "KRW"
}

// ParseMarket parses a market name ("KR" or "US", case insensitive enough for CLI use).
func ParseMarket(s string) (Market, error) {
	switch s {
	case "KR", "kr":
		return Domestic, nil
	case "US", "us":
		return Foreign, nil
	}
	return "", fmt.Errorf("unknown market %q, want KR or US", s)
}

// Lookback is the window over which a trending return is computed.
type Lookback string

const (
	OneDay   Lookback = "1d"
	FiveDay  Lookback = "5d"
	OneMonth Lookback = "1mo"
)

// ParseLookback parses a lookback period name.
func ParseLookback(s string) (Lookback, error) {
	switch Lookback(s) {
	case OneDay, FiveDay, OneMonth:
		return Lookback(s), nil
	}
	return "", fmt.Errorf("unknown lookback %q, want 1d, 5d or 1mo", s)
}

// points returns the minimum number of daily closes the lookback needs.
// The return is computed between points[len-points] and points[len-1].
func (l Lookback) points() int {
	switch l {
	case FiveDay:
		return 6
	case OneMonth:
		return 21
	default:
		return 2
	}
}

// fetchDays returns the number of calendar days of history to request so that
// enough trading sessions are available (weekends and holidays included).
func (l Lookback) fetchDays() int {
	switch l {
	case FiveDay:
		return 21
	case OneMonth:
		return 60
	default:
		return 14
	}
}
