package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// watchlistCmd holds the flags for the 'watchlist' subcommand.
type watchlistCmd struct {
	market  string
	budget  string
	watch   int
	refresh bool
}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "display the watchlist dashboards with live quotes" }
func (*watchlistCmd) Usage() string {
	return `etw watchlist [-market KR|US] [-budget <amount>] [-w n] [-refresh]

  Displays the watchlist of each account enriched with live market data.
  With -budget, also shows the target allocation of that amount with
  after-tax dividend estimates.
`
}

func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.market, "market", "", "Only this market (KR or US). Defaults to both.")
	f.StringVar(&c.budget, "budget", "", "Budget to allocate across the target ratios")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
	f.BoolVar(&c.refresh, "refresh", false, "drop cached quotes first")
}

func (c *watchlistCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return errorf("%v", err)
	}

	markets := []etfwatch.Market{etfwatch.Domestic, etfwatch.Foreign}
	if c.market != "" {
		m, err := etfwatch.ParseMarket(c.market)
		if err != nil {
			return errorf("%v", err)
		}
		markets = []etfwatch.Market{m}
	}

	var budget decimal.Decimal
	if c.budget != "" {
		budget, err = decimal.NewFromString(c.budget)
		if err != nil {
			return errorf("invalid budget %q: %v", c.budget, err)
		}
	}

	if c.refresh {
		a.cache.Clear()
	}
	for {
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		for _, market := range markets {
			if st := c.render(a, market, budget); st != subcommands.ExitSuccess {
				return st
			}
		}
		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}

func (c *watchlistCmd) render(a *app, market etfwatch.Market, budget decimal.Decimal) subcommands.ExitStatus {
	entries, err := etfwatch.ReadWatchlist(a.cfg.WatchlistPath(market))
	if err != nil {
		return errorf("%v", err)
	}

	rows := etfwatch.Enrich(a.quoter, a.cache, market, entries)
	rate := a.rates.USDKRW()
	printMarkdown(renderer.WatchlistMarkdown(market, rows, rate))

	if !budget.IsZero() {
		amount := budget
		if market == etfwatch.Foreign {
			// the budget is given in KRW, allocate its USD equivalent
			amount = budget.Div(rate).Round(2)
		}
		printMarkdown(renderer.AllocationMarkdown(a.cfg, market, rows, amount))
	}
	return subcommands.ExitSuccess
}
