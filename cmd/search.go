package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "resolve a ticker, code or fund name" }
func (*searchCmd) Usage() string {
	return `etw search <query>

  Resolves free-form input into symbols: a Hangul fund name searches the KR
  listing, an all-digit code is checked on the KR market, anything else is
  tried as a US ticker.

Usage Examples:
$ etw search 미국배당
$ etw search 005930
$ etw search jepi
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return errorf("missing query, see 'etw help search'")
	}
	query := strings.Join(f.Args(), " ")

	a, err := newApp()
	if err != nil {
		return errorf("%v", err)
	}

	matches := etfwatch.Resolve(a.quoter, a.cache, query)
	printMarkdown(renderer.SearchMarkdown(query, matches))
	return subcommands.ExitSuccess
}
