package etfwatch

import (
	"time"

	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

func testConfig() *Config {
	return &Config{
		DataDir:          "testdata",
		CacheTTL:         time.Minute,
		Timeout:          time.Second,
		MaxRetries:       3,
		RetryDelay:       time.Millisecond,
		DefaultUSDKRW:    decimal.NewFromInt(1320),
		USWithholdingTax: 0.15,
		KRDividendTax:    0.154,
		KRSeparateTax:    0.14,
		ISATaxFreeLimit:  decimal.NewFromInt(2_000_000),
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// bars builds an ascending daily series from closes, one bar per day ending today.
func bars(closes ...string) []Bar {
	out := make([]Bar, len(closes))
	day := date.Today().Add(-len(closes) + 1)
	for i, c := range closes {
		out[i] = Bar{Day: day.Add(i), Close: d(c), Volume: 1000}
	}
	return out
}

// fakeForeign scripts the ForeignSource contract for tests.
type fakeForeign struct {
	quotes  map[string]SourceQuote
	daily   map[string][]Bar
	err     error
	callsQ  int
	callsD  int
}

func (f *fakeForeign) Quote(ticker string) (SourceQuote, error) {
	f.callsQ++
	if f.err != nil {
		return SourceQuote{}, f.err
	}
	sq, ok := f.quotes[ticker]
	if !ok {
		return SourceQuote{}, NotFound(ticker)
	}
	return sq, nil
}

func (f *fakeForeign) Daily(ticker string, from, to date.Date) ([]Bar, error) {
	f.callsD++
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.daily[ticker]
	if !ok {
		return nil, NotFound(ticker)
	}
	return b, nil
}

// fakeDomestic scripts the DomesticSource contract for tests.
type fakeDomestic struct {
	daily    map[string][]Bar
	funds    []ListedFund
	names    map[string]string
	fundsErr error
	err      error
	callsD   int
}

func (f *fakeDomestic) Daily(code string, from, to date.Date) ([]Bar, error) {
	f.callsD++
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.daily[code]
	if !ok {
		return nil, NotFound(code)
	}
	return b, nil
}

func (f *fakeDomestic) Funds() ([]ListedFund, error) {
	if f.fundsErr != nil {
		return nil, f.fundsErr
	}
	return f.funds, nil
}

func (f *fakeDomestic) StockName(code string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.names[code], nil
}
