package etfwatch

import (
	"errors"
	"log"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/dykim/etfwatch/date"
)

// Quoter adapts the two heterogeneous upstream sources behind one normalized
// quote contract. It retries transient failures with a fixed delay and always
// returns a FetchError after exhausting retries, never a raw transport error.
// It does not cache: caching happens above, at pipeline granularity.
type Quoter struct {
	cfg      *Config
	foreign  ForeignSource
	domestic DomesticSource
}

// NewQuoter returns a quote adapter over the given sources.
func NewQuoter(cfg *Config, foreign ForeignSource, domestic DomesticSource) *Quoter {
	return &Quoter{cfg: cfg, foreign: foreign, domestic: domestic}
}

// Foreign fetches a quote for an alphanumeric ticker (e.g. "JEPI").
// The display name falls back from long name to short name to the ticker, and
// a missing live price falls back to the most recent session close.
func (q *Quoter) Foreign(ticker string) (Quote, error) {
	var sq SourceQuote
	err := q.retry(ticker, func() error {
		var err error
		sq, err = q.foreign.Quote(ticker)
		return err
	})
	if err != nil {
		return Quote{}, err
	}

	price := sq.Price
	if price == nil {
		// no live price: use the close of the most recent session
		var bars []Bar
		err := q.retry(ticker, func() error {
			var err error
			bars, err = q.foreign.Daily(ticker, date.Today().Add(-7), date.Today())
			return err
		})
		if err != nil {
			return Quote{}, err
		}
		if len(bars) == 0 {
			return Quote{}, NotFound(ticker)
		}
		last := bars[len(bars)-1].Close
		price = &last
	}

	prev := *price
	if sq.PreviousClose != nil {
		prev = *sq.PreviousClose
	}

	name := sq.LongName
	if name == "" {
		name = sq.ShortName
	}
	if name == "" {
		name = ticker
	}
	return newQuote(ticker, name, *price, prev, sq.DividendYield, "USD"), nil
}

// Domestic fetches a quote for a numeric code (e.g. "479920"). Price and
// previous close are the last two closes of a recent history window; the
// upstream source provides no dividend yield so it is always 0 here, callers
// that need one supply it out of band (the watchlist override column).
func (q *Quoter) Domestic(code string) (Quote, error) {
	code = NormalizeCode(code)

	var bars []Bar
	err := q.retry(code, func() error {
		var err error
		bars, err = q.domestic.Daily(code, date.Today().Add(-14), date.Today())
		return err
	})
	if err != nil {
		return Quote{}, err
	}
	if len(bars) == 0 {
		return Quote{}, NotFound(code)
	}

	price := bars[len(bars)-1].Close
	prev := price // a single session yields a zero change
	if len(bars) >= 2 {
		prev = bars[len(bars)-2].Close
	}
	return newQuote(code, q.DomesticName(code), price, prev, 0, "KRW"), nil
}

// DomesticName resolves a display name for a code, best effort: the ETF
// listing first, the broad exchange listing second, the raw code last.
// Listing failures are logged and ignored.
func (q *Quoter) DomesticName(code string) string {
	code = NormalizeCode(code)

	funds, err := q.domestic.Funds()
	if err != nil {
		log.Printf("etf listing unavailable: %v", err)
	}
	for _, f := range funds {
		if NormalizeCode(f.Code) == code {
			return f.Name
		}
	}

	name, err := q.domestic.StockName(code)
	if err != nil {
		log.Printf("name lookup for %s failed: %v", code, err)
		return code
	}
	if name == "" {
		return code
	}
	return name
}

// retry runs op up to cfg.MaxRetries times with a fixed delay in between.
// NotFound and BadData outcomes are not retried. Whatever the cause, the
// returned error is always a *FetchError.
func (q *Quoter) retry(ticker string, op func() error) error {
	attempt := 0
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(q.cfg.RetryDelay), uint64(q.cfg.MaxRetries-1))
	err := backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if r := ReasonOf(err); r == FailNotFound || r == FailBadData {
			return backoff.Permanent(err)
		}
		log.Printf("fetch %s failed (attempt %d/%d): %v", ticker, attempt, q.cfg.MaxRetries, err)
		return err
	}, policy)
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	return Transient(ticker, err)
}

// NormalizeCode canonicalizes a domestic code: spreadsheet round trips tend to
// strip the leading zeros of codes like "005930", so all-digit strings shorter
// than 6 runes are left padded back.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return code
		}
	}
	for len(code) < 6 {
		code = "0" + code
	}
	return code
}
