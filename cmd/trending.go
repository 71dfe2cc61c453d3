package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/renderer"
	"github.com/google/subcommands"
)

// trendingCmd holds the flags for the 'trending' subcommand.
type trendingCmd struct {
	market  string
	period  string
	limit   int
	watch   int
	refresh bool
}

func (*trendingCmd) Name() string     { return "trending" }
func (*trendingCmd) Synopsis() string { return "display the top movers of a market" }
func (*trendingCmd) Usage() string {
	return `etw trending [-market KR|US] [-period 1d|5d|1mo] [-limit n] [-w n] [-refresh]

  Ranks a market's candidate universe by return over the period, best first.
`
}

func (c *trendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "market", "KR", "Market to scan (KR or US)")
	f.StringVar(&c.period, "period", "1d", "Return window (1d, 5d or 1mo)")
	f.IntVar(&c.limit, "limit", 10, "How many entries to show")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
	f.BoolVar(&c.refresh, "refresh", false, "drop cached rankings first")
}

func (c *trendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := etfwatch.ParseMarket(c.market)
	if err != nil {
		return errorf("%v", err)
	}
	lb, err := etfwatch.ParseLookback(c.period)
	if err != nil {
		return errorf("%v", err)
	}

	a, err := newApp()
	if err != nil {
		return errorf("%v", err)
	}
	if c.refresh {
		a.cache.Clear()
	}

	for {
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		entries := etfwatch.Trending(a.quoter, a.cache, market, lb, c.limit)
		printMarkdown(renderer.TrendingMarkdown(market, lb, entries))

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
