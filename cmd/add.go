package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name  string
	typ   string
	ratio float64
	yield float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "resolve a symbol and append it to its watchlist" }
func (*addCmd) Usage() string {
	return `etw add [-name <name>] [-type <type>] [-ratio <percent>] [-yield <percent>] <query>

  Resolves the query and appends the symbol to the watchlist of its market:
  KR symbols go to the ISA file, US symbols to the direct file. When the
  query matches several funds the candidates are listed instead, rerun with
  the exact code.

Usage Examples:
$ etw add -ratio 40 -type dividend jepi
$ etw add -ratio 20 -yield 7.2 479920
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name. Defaults to the resolved one.")
	f.StringVar(&c.typ, "type", "", "Grouping label, e.g. dividend or growth")
	f.Float64Var(&c.ratio, "ratio", 0, "Target ratio in percent")
	f.Float64Var(&c.yield, "yield", 0, "Dividend yield override in percent")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return errorf("missing query, see 'etw help add'")
	}
	query := strings.Join(f.Args(), " ")

	a, err := newApp()
	if err != nil {
		return errorf("%v", err)
	}

	matches := etfwatch.Resolve(a.quoter, a.cache, query)
	if len(matches) == 0 {
		return errorf("no symbol found for %q", query)
	}
	if len(matches) > 1 {
		printMarkdown(renderer.SearchMarkdown(query, matches))
		return errorf("%d candidates for %q, rerun with the exact code", len(matches), query)
	}

	m := matches[0]
	entry := c.entry(m)
	path := a.cfg.WatchlistPath(m.Market)
	if err := etfwatch.AppendWatchlist(path, entry); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Added %s (%s) to %s\n", entry.Ticker, entry.Name, path)
	return subcommands.ExitSuccess
}

func (c *addCmd) entry(m etfwatch.Match) etfwatch.Entry {
	e := etfwatch.Entry{
		Ticker:      m.Ticker,
		Name:        m.Name,
		Type:        c.typ,
		TargetRatio: etfwatch.Percent(c.ratio),
	}
	if c.name != "" {
		e.Name = c.name
	}
	if c.yield > 0 {
		y := etfwatch.Percent(c.yield)
		e.DividendYield = &y
	}
	return e
}
