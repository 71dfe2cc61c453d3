package etfwatch

import (
	"bufio"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dykim/etfwatch/date"
	"github.com/shopspring/decimal"
)

// defaultUniverseUS is the candidate set scanned for foreign trending. A full
// index constituent feed would need another paid API, so a fixed slice of
// large caps serves instead. Override with a file via ETW_UNIVERSE_US.
var defaultUniverseUS = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK-B", "UNH", "JNJ",
	"V", "XOM", "WMT", "JPM", "MA", "PG", "AVGO", "HD", "CVX", "MRK",
	"LLY", "ABBV", "PEP", "KO", "COST", "MCD", "TMO", "CSCO", "ACN", "ADBE",
	"NKE", "ABT", "DHR", "TXN", "CRM", "NEE", "VZ", "INTC", "WFC", "CMCSA",
	"AMD", "QCOM", "PM", "UNP", "ORCL", "BMY", "HON", "AMGN", "RTX", "UPS",
}

// universeSize caps how many domestic listing entries are scanned per run.
const universeSize = 50

// TrendingEntry is one ranked row of a trending scan. It is ephemeral,
// nothing persists it.
type TrendingEntry struct {
	Ticker        string
	Name          string
	Price         decimal.Decimal
	Return        Percent
	Volume        int64
	DividendYield Percent
	Currency      string
}

// Trending ranks a market's candidate universe by return over the lookback
// window, best first, at most limit rows. Candidates whose history cannot be
// fetched or is too short for the window are skipped, never ranked as zero.
// An unavailable universe logs and yields an empty ranking.
func Trending(q *Quoter, cache *Cache, market Market, lb Lookback, limit int) []TrendingEntry {
	entries, err := Cached(cache, Key("trending", string(market), string(lb)), func() ([]TrendingEntry, error) {
		return scan(q, market, lb), nil
	})
	if err != nil {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Return > entries[j].Return })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	// the foreign scan knows only tickers, resolve names and yields for the
	// few rows that survived the cut; best effort, through the quote cache
	if market == Foreign {
		for i := range entries {
			e := &entries[i]
			quote, err := Cached(cache, Key("quote", string(market), e.Ticker), func() (Quote, error) {
				return q.Foreign(e.Ticker)
			})
			if err != nil {
				continue
			}
			e.Name = quote.Name
			e.DividendYield = quote.DividendYield
		}
	}
	return entries
}

func scan(q *Quoter, market Market, lb Lookback) []TrendingEntry {
	var out []TrendingEntry
	from := date.Today().Add(-lb.fetchDays())
	to := date.Today()

	for _, c := range universe(q, market) {
		var bars []Bar
		var err error
		switch market {
		case Domestic:
			bars, err = q.domestic.Daily(c.Code, from, to)
		default:
			bars, err = q.foreign.Daily(c.Code, from, to)
		}
		if err != nil {
			log.Printf("trending %s: %v", c.Code, err)
			continue
		}
		ret, ok := lookbackReturn(bars, lb)
		if !ok {
			continue
		}
		last := bars[len(bars)-1]
		out = append(out, TrendingEntry{
			Ticker:   c.Code,
			Name:     c.Name,
			Price:    last.Close,
			Return:   ret,
			Volume:   last.Volume,
			Currency: market.Currency(),
		})
	}
	return out
}

func universe(q *Quoter, market Market) []ListedFund {
	if market == Domestic {
		funds, err := q.domestic.Funds()
		if err != nil {
			log.Printf("etf listing unavailable: %v", err)
			return nil
		}
		if len(funds) > universeSize {
			funds = funds[:universeSize]
		}
		return funds
	}

	var out []ListedFund
	for _, t := range loadUniverseUS(q.cfg.UniverseUSFile) {
		out = append(out, ListedFund{Code: t, Name: t})
	}
	return out
}

// loadUniverseUS reads one ticker per line, '#' starting a comment. Any
// problem with the file falls back to the built-in universe.
func loadUniverseUS(path string) []string {
	if path == "" {
		return defaultUniverseUS
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("universe file %s: %v", path, err)
		return defaultUniverseUS
	}
	defer f.Close()

	var tickers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			tickers = append(tickers, strings.ToUpper(line))
		}
	}
	if len(tickers) == 0 {
		return defaultUniverseUS
	}
	return tickers
}
