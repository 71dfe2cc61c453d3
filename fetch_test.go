package etfwatch

import (
	"errors"
	"fmt"
	"testing"
)

func TestForeignQuote(t *testing.T) {
	foreign := &fakeForeign{
		quotes: map[string]SourceQuote{
			"JEPI": {Price: dp("56.50"), PreviousClose: dp("56.00"), LongName: "JPMorgan Equity Premium Income ETF", ShortName: "JEPI", DividendYield: 8.15},
		},
	}
	q := NewQuoter(testConfig(), foreign, &fakeDomestic{})

	got, err := q.Foreign("JEPI")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "JPMorgan Equity Premium Income ETF" {
		t.Errorf("Name = %q", got.Name)
	}
	if !got.Change.Equal(d("0.50")) {
		t.Errorf("Change = %s", got.Change)
	}
	if got.Currency != "USD" {
		t.Errorf("Currency = %q", got.Currency)
	}
	if !got.DividendYield.Equal(8.15) {
		t.Errorf("DividendYield = %v", got.DividendYield)
	}
}

func TestForeignQuoteNameFallback(t *testing.T) {
	foreign := &fakeForeign{
		quotes: map[string]SourceQuote{
			"XYZ": {Price: dp("10"), PreviousClose: dp("10")},
		},
	}
	q := NewQuoter(testConfig(), foreign, &fakeDomestic{})
	got, err := q.Foreign("XYZ")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "XYZ" {
		t.Errorf("Name = %q, want ticker fallback", got.Name)
	}
}

func TestForeignQuotePriceFallsBackToLastClose(t *testing.T) {
	foreign := &fakeForeign{
		quotes: map[string]SourceQuote{"SCHD": {ShortName: "SCHD"}},
		daily:  map[string][]Bar{"SCHD": bars("26.10", "26.45")},
	}
	q := NewQuoter(testConfig(), foreign, &fakeDomestic{})
	got, err := q.Foreign("SCHD")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Price.Equal(d("26.45")) {
		t.Errorf("Price = %s, want last close", got.Price)
	}
}

func TestForeignQuoteRetriesTransient(t *testing.T) {
	foreign := &fakeForeign{err: errors.New("connection reset")}
	cfg := testConfig()
	q := NewQuoter(cfg, foreign, &fakeDomestic{})

	_, err := q.Foreign("VOO")
	if err == nil {
		t.Fatal("want error")
	}
	if r := ReasonOf(err); r != FailTransient {
		t.Errorf("reason = %v", r)
	}
	if foreign.callsQ != cfg.MaxRetries {
		t.Errorf("attempts = %d, want %d", foreign.callsQ, cfg.MaxRetries)
	}
}

func TestForeignQuoteNotFoundIsNotRetried(t *testing.T) {
	foreign := &fakeForeign{quotes: map[string]SourceQuote{}}
	q := NewQuoter(testConfig(), foreign, &fakeDomestic{})

	_, err := q.Foreign("NOPE")
	if r := ReasonOf(err); r != FailNotFound {
		t.Fatalf("reason = %v, err = %v", r, err)
	}
	if foreign.callsQ != 1 {
		t.Errorf("attempts = %d, want 1", foreign.callsQ)
	}
}

func TestForeignQuoteWrappedReasonSurvives(t *testing.T) {
	foreign := &fakeForeign{err: fmt.Errorf("decode chart: %w", BadData("VOO", errors.New("close count mismatch")))}
	q := NewQuoter(testConfig(), foreign, &fakeDomestic{})

	_, err := q.Foreign("VOO")
	if r := ReasonOf(err); r != FailBadData {
		t.Fatalf("reason = %v, err = %v", r, err)
	}
	if foreign.callsQ != 1 {
		t.Errorf("attempts = %d, want 1", foreign.callsQ)
	}
}

func TestDomesticQuote(t *testing.T) {
	domestic := &fakeDomestic{
		daily: map[string][]Bar{"479920": bars("10250", "10300", "10460")},
		funds: []ListedFund{{Code: "479920", Name: "KODEX 미국배당커버드콜액티브"}},
	}
	q := NewQuoter(testConfig(), &fakeForeign{}, domestic)

	got, err := q.Domestic("479920")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Price.Equal(d("10460")) {
		t.Errorf("Price = %s", got.Price)
	}
	if !got.Change.Equal(d("160")) {
		t.Errorf("Change = %s", got.Change)
	}
	if got.Name != "KODEX 미국배당커버드콜액티브" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Currency != "KRW" {
		t.Errorf("Currency = %q", got.Currency)
	}
	if got.DividendYield != 0 {
		t.Errorf("DividendYield = %v, want 0", got.DividendYield)
	}
}

func TestDomesticQuoteSingleBar(t *testing.T) {
	domestic := &fakeDomestic{daily: map[string][]Bar{"005930": bars("71000")}}
	q := NewQuoter(testConfig(), &fakeForeign{}, domestic)

	got, err := q.Domestic("005930")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Change.IsZero() {
		t.Errorf("Change = %s, want 0 for a single session", got.Change)
	}
}

func TestDomesticName(t *testing.T) {
	domestic := &fakeDomestic{
		funds: []ListedFund{{Code: "479920", Name: "KODEX 미국배당커버드콜액티브"}},
		names: map[string]string{"005930": "삼성전자"},
	}
	q := NewQuoter(testConfig(), &fakeForeign{}, domestic)

	tests := []struct {
		code string
		want string
	}{
		{"479920", "KODEX 미국배당커버드콜액티브"}, // from the ETF listing
		{"005930", "삼성전자"},               // from the broad listing
		{"5930", "삼성전자"},                 // padded before lookup
		{"000001", "000001"},             // unknown everywhere
	}
	for _, tt := range tests {
		if got := q.DomesticName(tt.code); got != tt.want {
			t.Errorf("DomesticName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"005930", "005930"},
		{"5930", "005930"},
		{" 5930 ", "005930"},
		{"479920", "479920"},
		{"AAPL", "AAPL"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
