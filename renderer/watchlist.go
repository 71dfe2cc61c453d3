// Package renderer turns pipeline results into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/dykim/etfwatch"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// WatchlistMarkdown renders the enriched watchlist of one market. For the
// foreign market a KRW column is added using the given rate.
func WatchlistMarkdown(market etfwatch.Market, rows []etfwatch.Row, usdkrw decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if market == etfwatch.Foreign {
		doc.H1("Direct Watchlist (US)")
	} else {
		doc.H1("ISA Watchlist (KR)")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Ticker",
			"Name",
			"Price",
			"Change",
			"Change %",
			"Yield",
			"Target",
		},
	}
	if market == etfwatch.Foreign {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, "Price (KRW)")
	}

	for _, r := range rows {
		row := []string{
			r.Ticker,
			r.Name,
			etfwatch.FormatMoney(r.Price, r.Currency),
			etfwatch.FormatSignedMoney(r.Change, r.Currency),
			etfwatch.FormatSignedPercent(r.ChangePercent),
			etfwatch.FormatPercent(r.DividendYield),
			r.TargetRatio.String(),
		}
		if market == etfwatch.Foreign {
			krw := etfwatch.ConvertUSDKRW(r.Price, usdkrw)
			row = append(row, etfwatch.FormatMoney(krw, "KRW"))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if market == etfwatch.Foreign {
		doc.PlainText(fmt.Sprintf("USD/KRW %s", usdkrw))
	}
	if n := failedCount(rows); n > 0 {
		doc.PlainText(fmt.Sprintf("%d of %d quotes unavailable", n, len(rows)))
	}
	return doc.String()
}

func failedCount(rows []etfwatch.Row) int {
	n := 0
	for _, r := range rows {
		if r.Price == nil {
			n++
		}
	}
	return n
}

// AllocationMarkdown renders the target allocation of a budget across the
// watchlist, with the after tax annual dividend of each position.
func AllocationMarkdown(cfg *etfwatch.Config, market etfwatch.Market, rows []etfwatch.Row, budget decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation of %s", etfwatch.FormatMoney(&budget, market.Currency())))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Ticker",
			"Target",
			"Amount",
			"After-Tax Dividend / Year",
		},
	}

	totalDividend := decimal.Zero
	for _, r := range rows {
		amount := etfwatch.TargetAmount(budget, r.TargetRatio)
		dividend := "N/A"
		if r.DividendYield != nil {
			gross := etfwatch.AnnualDividend(amount, *r.DividendYield)
			net := cfg.AfterTaxDividend(gross, market)
			totalDividend = totalDividend.Add(net)
			dividend = etfwatch.FormatMoney(&net, market.Currency())
		}
		table.Rows = append(table.Rows, []string{
			r.Ticker,
			r.TargetRatio.String(),
			etfwatch.FormatMoney(&amount, market.Currency()),
			dividend,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total after-tax dividend: %s / year", etfwatch.FormatMoney(&totalDividend, market.Currency())))
	return doc.String()
}
