package etfwatch

import (
	"log"

	"github.com/shopspring/decimal"
)

// Row is a watchlist entry enriched with live market data. Pointer fields
// stay nil when the quote could not be fetched, so a partially broken feed
// still renders the rest of the table.
type Row struct {
	Entry
	Price         *decimal.Decimal
	Change        *decimal.Decimal
	ChangePercent *Percent
	DividendYield *Percent
	Currency      string
}

// Enrich quotes every watchlist entry for the given market. The result has
// the same length and order as entries; rows whose fetch failed keep nil
// market fields. A dividend yield set on the entry always wins over the
// quoted one.
func Enrich(q *Quoter, cache *Cache, market Market, entries []Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Entry: e, Currency: market.Currency(), DividendYield: e.DividendYield}
		if rows[i].Name == "" {
			rows[i].Name = e.Ticker
		}

		// Cache under the canonical code so lookups by "5930" and
		// "005930" share one entry with Resolve.
		ticker := e.Ticker
		if market == Domestic {
			ticker = NormalizeCode(ticker)
		}
		quote, err := Cached(cache, Key("quote", string(market), ticker), func() (Quote, error) {
			switch market {
			case Domestic:
				return q.Domestic(ticker)
			default:
				return q.Foreign(ticker)
			}
		})
		if err != nil {
			log.Printf("enrich %s: %v", e.Ticker, err)
			continue
		}

		price, change := quote.Price, quote.Change
		pct := quote.ChangePercent
		rows[i].Price = &price
		rows[i].Change = &change
		rows[i].ChangePercent = &pct
		rows[i].Currency = quote.Currency
		if e.DividendYield == nil {
			yield := quote.DividendYield
			rows[i].DividendYield = &yield
		}
		if e.Name == "" && quote.Name != "" {
			rows[i].Name = quote.Name
		}
	}
	return rows
}
