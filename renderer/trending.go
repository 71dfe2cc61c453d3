package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dykim/etfwatch"
	md "github.com/nao1215/markdown"
)

// TrendingMarkdown renders a trending ranking.
func TrendingMarkdown(market etfwatch.Market, lb etfwatch.Lookback, entries []etfwatch.TrendingEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if market == etfwatch.Foreign {
		doc.H1(fmt.Sprintf("Hot US Stocks (%s)", lb))
	} else {
		doc.H1(fmt.Sprintf("Hot KR ETFs (%s)", lb))
	}

	if len(entries) == 0 {
		doc.PlainText("No data available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"#",
			"Ticker",
			"Name",
			"Price",
			"Return",
			"Yield",
			"Volume",
		},
	}
	for i, e := range entries {
		price := e.Price
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			e.Ticker,
			e.Name,
			etfwatch.FormatMoney(&price, e.Currency),
			e.Return.SignedString(),
			e.DividendYield.String(),
			strconv.FormatInt(e.Volume, 10),
		})
	}
	doc.Table(table)
	return doc.String()
}
