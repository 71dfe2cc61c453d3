package etfwatch

import (
	"log"
	"strings"
)

// maxNameMatches caps how many rows a name search returns.
const maxNameMatches = 10

// Match is one symbol resolution result.
type Match struct {
	Ticker string
	Name   string
	Market Market
}

// Resolve turns free-form user input into candidate symbols. The shape of the
// query decides the route: text containing Hangul searches domestic fund
// names, an all-digit query is checked as a domestic code, anything else is
// tried as a foreign ticker. A digit query that turns out dead falls through
// to the foreign route; a Hangul search never does.
func Resolve(q *Quoter, cache *Cache, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if containsHangul(query) {
		return resolveByName(q, cache, query)
	}

	if isDigits(query) {
		code := NormalizeCode(query)
		if _, err := Cached(cache, Key("quote", string(Domestic), code), func() (Quote, error) {
			return q.Domestic(code)
		}); err == nil {
			return []Match{{Ticker: code, Name: q.DomesticName(code), Market: Domestic}}
		}
		// dead code upstream, maybe it is a numeric foreign symbol
	}

	ticker := strings.ToUpper(query)
	quote, err := Cached(cache, Key("quote", string(Foreign), ticker), func() (Quote, error) {
		return q.Foreign(ticker)
	})
	if err != nil {
		log.Printf("resolve %s: %v", query, err)
		return nil
	}
	return []Match{{Ticker: ticker, Name: quote.Name, Market: Foreign}}
}

func resolveByName(q *Quoter, cache *Cache, query string) []Match {
	funds, err := Cached(cache, Key("funds"), q.domestic.Funds)
	if err != nil {
		log.Printf("resolve %q: %v", query, err)
		return nil
	}

	needle := strings.ToLower(query)
	var out []Match
	for _, f := range funds {
		if !strings.Contains(strings.ToLower(f.Name), needle) {
			continue
		}
		out = append(out, Match{Ticker: f.Code, Name: f.Name, Market: Domestic})
		if len(out) == maxNameMatches {
			break
		}
	}
	return out
}

func containsHangul(s string) bool {
	for _, r := range s {
		if r >= '가' && r <= '힣' {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
