package etfwatch

import (
	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// SourceQuote is the raw, normalized answer of an upstream quote endpoint,
// before the Quote invariant is applied. Pointer fields are nil when the
// upstream response does not carry them.
type SourceQuote struct {
	Price         *decimal.Decimal
	PreviousClose *decimal.Decimal
	LongName      string
	ShortName     string
	DividendYield Percent // already in percent form (8.15 means 8.15%)
	Volume        int64
}

// ForeignSource provides data for alphanumeric-ticker securities and FX pairs.
// Implemented by yahoo.Client.
type ForeignSource interface {
	// Quote returns the current quote for a ticker such as "JEPI" or "KRW=X".
	Quote(ticker string) (SourceQuote, error)
	// Daily returns daily bars for the ticker between from and to, oldest first.
	Daily(ticker string, from, to date.Date) ([]Bar, error)
}

// ListedFund is one row of the domestic ETF reference listing.
type ListedFund struct {
	Code string
	Name string
}

// DomesticSource provides data for numeric-code securities.
// Implemented by krx.Client.
type DomesticSource interface {
	// Daily returns daily bars for a 6-digit code between from and to, oldest first.
	Daily(code string, from, to date.Date) ([]Bar, error)
	// Funds returns the ETF reference listing of the exchange.
	Funds() ([]ListedFund, error)
	// StockName resolves a display name from the broad exchange listing.
	StockName(code string) (string, error)
}
