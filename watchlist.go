package etfwatch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// watchlistHeader is the column order used when writing. Reading is header
// mapped, so files with reordered or extra columns still load.
var watchlistHeader = []string{"ticker", "name", "type", "target_ratio", "dividend_yield"}

// Entry is one row of a watchlist file.
type Entry struct {
	Ticker      string
	Name        string
	Type        string // free-form grouping label, e.g. "dividend" or "growth"
	TargetRatio Percent
	// DividendYield overrides the quoted yield when set. Domestic sources
	// publish no yields, so domestic dividend funds carry one here.
	DividendYield *Percent
}

// ReadWatchlist loads the entries of a watchlist CSV. A missing file is an
// empty watchlist, not an error.
func ReadWatchlist(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	// Hand-edited files drop trailing optional columns per row.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int)
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["ticker"]; !ok {
		return nil, fmt.Errorf("%s: missing ticker column", path)
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var entries []Entry
	for n, rec := range records[1:] {
		ticker := field(rec, "ticker")
		if ticker == "" {
			continue
		}
		e := Entry{
			Ticker: ticker,
			Name:   field(rec, "name"),
			Type:   field(rec, "type"),
		}
		if s := field(rec, "target_ratio"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: target_ratio %q: %w", path, n+2, s, err)
			}
			e.TargetRatio = Percent(v)
		}
		if s := field(rec, "dividend_yield"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: dividend_yield %q: %w", path, n+2, s, err)
			}
			p := Percent(v)
			e.DividendYield = &p
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AppendWatchlist adds one entry at the end of a watchlist CSV, creating the
// file with its header when it does not exist yet. Duplicate tickers are
// rejected.
func AppendWatchlist(path string, e Entry) error {
	existing, err := ReadWatchlist(path)
	if err != nil {
		return err
	}
	for _, x := range existing {
		if x.Ticker == e.Ticker {
			return fmt.Errorf("%s already in %s", e.Ticker, path)
		}
	}

	header, create, err := watchlistColumns(path)
	if err != nil {
		return err
	}
	if create {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if create {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	yield := ""
	if e.DividendYield != nil {
		yield = strconv.FormatFloat(float64(*e.DividendYield), 'f', -1, 64)
	}
	values := map[string]string{
		"ticker":         e.Ticker,
		"name":           e.Name,
		"type":           e.Type,
		"target_ratio":   strconv.FormatFloat(float64(e.TargetRatio), 'f', -1, 64),
		"dividend_yield": yield,
	}
	// Rows must match the width of the header already in the file, which
	// may lack optional columns.
	rec := make([]string, len(header))
	for i, name := range header {
		rec[i] = values[strings.ToLower(strings.TrimSpace(name))]
	}
	if err := w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// watchlistColumns returns the header row of an existing watchlist file, or
// the default header when the file has to be created.
func watchlistColumns(path string) (header []string, create bool, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return watchlistHeader, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rec, err := r.Read()
	if err == io.EOF {
		return watchlistHeader, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	return rec, false, nil
}
