package etfwatch

import (
	"log"

	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// fxTicker is the upstream symbol for the USD to KRW exchange rate.
const fxTicker = "KRW=X"

// Rates provides currency conversion rates. It never fails: when every
// upstream path is down it falls back to the configured default rate so that
// a broken FX feed cannot take the whole dashboard down with it.
type Rates struct {
	cfg     *Config
	foreign ForeignSource
	cache   *Cache
}

// NewRates returns a rate provider over the given source. cache may be nil.
func NewRates(cfg *Config, foreign ForeignSource, cache *Cache) *Rates {
	return &Rates{cfg: cfg, foreign: foreign, cache: cache}
}

// USDKRW returns the current USD to KRW rate. The live quote is tried first,
// then the latest daily close, then the configured default.
func (r *Rates) USDKRW() decimal.Decimal {
	rate, err := Cached(r.cache, Key("usdkrw"), r.fetch)
	if err != nil {
		log.Printf("usdkrw unavailable, using default %s: %v", r.cfg.DefaultUSDKRW, err)
		return r.cfg.DefaultUSDKRW
	}
	return rate
}

func (r *Rates) fetch() (decimal.Decimal, error) {
	sq, err := r.foreign.Quote(fxTicker)
	if err == nil && sq.Price != nil && sq.Price.IsPositive() {
		return *sq.Price, nil
	}
	if err != nil {
		log.Printf("usdkrw quote failed, trying daily close: %v", err)
	}

	bars, err := r.foreign.Daily(fxTicker, date.Today().Add(-7), date.Today())
	if err != nil {
		return decimal.Zero, err
	}
	if len(bars) == 0 {
		return decimal.Zero, NotFound(fxTicker)
	}
	return bars[len(bars)-1].Close, nil
}
