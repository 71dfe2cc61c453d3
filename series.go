package etfwatch

import (
	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// Bar is one daily data point of a price history, oldest first when in a slice.
type Bar struct {
	Day    date.Date
	Close  decimal.Decimal
	Volume int64
}

// lookbackReturn computes the period return of a close-price series over the
// given lookback: 100 * (end - start) / start with start = bars[len-n] and
// end = bars[len-1]. It reports false when the series has fewer points than
// the lookback requires, or when the start price is zero.
func lookbackReturn(bars []Bar, lb Lookback) (Percent, bool) {
	n := lb.points()
	if len(bars) < n {
		return 0, false
	}
	start := bars[len(bars)-n].Close
	end := bars[len(bars)-1].Close
	if start.IsZero() {
		return 0, false
	}
	return Percent(end.Sub(start).Div(start).InexactFloat64() * 100), true
}
