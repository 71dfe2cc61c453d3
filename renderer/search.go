package renderer

import (
	"bytes"
	"fmt"

	"github.com/dykim/etfwatch"
	md "github.com/nao1215/markdown"
)

// SearchMarkdown renders symbol resolution results.
func SearchMarkdown(query string, matches []etfwatch.Match) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search %q", query))

	if len(matches) == 0 {
		doc.PlainText("No match.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{
			"Ticker",
			"Name",
			"Market",
		},
	}
	for _, m := range matches {
		table.Rows = append(table.Rows, []string{m.Ticker, m.Name, string(m.Market)})
	}
	doc.Table(table)
	return doc.String()
}
