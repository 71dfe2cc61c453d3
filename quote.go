package etfwatch

import "github.com/shopspring/decimal"

// Quote is one snapshot of a tradable security. It is always a successful
// snapshot: an unsuccessful fetch is represented by a FetchError, not by a
// zero-priced Quote.
type Quote struct {
	Ticker        string
	Name          string
	Price         decimal.Decimal
	Change        decimal.Decimal // absolute, same unit as Price
	ChangePercent Percent
	DividendYield Percent // 0 when the venue does not provide one
	Currency      string  // "USD" or "KRW"
}

// newQuote derives the change fields from price and previous close:
// change = price - previousClose, changePercent = 100*change/previousClose,
// defined as 0 when previousClose is 0.
func newQuote(ticker, name string, price, previousClose decimal.Decimal, yield Percent, currency string) Quote {
	q := Quote{
		Ticker:        ticker,
		Name:          name,
		Price:         price,
		DividendYield: yield,
		Currency:      currency,
	}
	q.Change = price.Sub(previousClose)
	if !previousClose.IsZero() {
		q.ChangePercent = Percent(q.Change.Div(previousClose).InexactFloat64() * 100)
	}
	return q
}
