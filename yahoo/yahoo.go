// Package yahoo implements the foreign market source on Yahoo Finance.
//
// Live quotes go through the v7 quote API via piquette/finance-go, daily
// history through the v8 chart API which needs no credentials. The same
// endpoints also serve FX pairs such as "KRW=X".
package yahoo

import (
	"fmt"
	"time"

	"github.com/dykim/etfwatch"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// Client fetches quotes and daily bars from Yahoo Finance.
// It implements etfwatch.ForeignSource.
type Client struct {
	chartURL string
	timeout  time.Duration
}

// New returns a client using the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{chartURL: "https://query1.finance.yahoo.com", timeout: timeout}
}

// Quote returns the current quote for a ticker such as "JEPI" or "KRW=X".
func (c *Client) Quote(ticker string) (etfwatch.SourceQuote, error) {
	q, err := equity.Get(ticker)
	if err != nil {
		return etfwatch.SourceQuote{}, fmt.Errorf("yahoo quote %s: %w", ticker, err)
	}
	if q == nil {
		return etfwatch.SourceQuote{}, etfwatch.NotFound(ticker)
	}

	sq := etfwatch.SourceQuote{
		LongName:  q.LongName,
		ShortName: q.ShortName,
		Volume:    int64(q.RegularMarketVolume),
		// the trailing yield comes back as a fraction, 0.0815 for 8.15%
		DividendYield: etfwatch.Percent(q.TrailingAnnualDividendYield * 100),
	}
	if q.RegularMarketPrice > 0 {
		p := decimal.NewFromFloat(q.RegularMarketPrice)
		sq.Price = &p
	}
	if q.RegularMarketPreviousClose > 0 {
		p := decimal.NewFromFloat(q.RegularMarketPreviousClose)
		sq.PreviousClose = &p
	}
	return sq, nil
}
