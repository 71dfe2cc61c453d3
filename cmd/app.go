// Package cmd implements the CLI application around the watchlist dashboards.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/dykim/etfwatch"
	"github.com/dykim/etfwatch/krx"
	"github.com/dykim/etfwatch/yahoo"
	"github.com/google/subcommands"
)

// Commands is the list a main package registers on its commander.
var Commands = []subcommands.Command{
	&watchlistCmd{},
	&trendingCmd{},
	&searchCmd{},
	&addCmd{},
	&rateCmd{},
	&topicCmd{},
}

// app wires the config, cache and market sources once per process.
type app struct {
	cfg    *etfwatch.Config
	cache  *etfwatch.Cache
	quoter *etfwatch.Quoter
	rates  *etfwatch.Rates
}

func newApp() (*app, error) {
	cfg, err := etfwatch.Load()
	if err != nil {
		return nil, err
	}
	foreign := yahoo.New(cfg.Timeout)
	domestic := krx.New(cfg.Timeout)
	cache := etfwatch.NewCache(cfg.CacheTTL)
	return &app{
		cfg:    cfg,
		cache:  cache,
		quoter: etfwatch.NewQuoter(cfg, foreign, domestic),
		rates:  etfwatch.NewRates(cfg, foreign, cache),
	}, nil
}

// printMarkdown renders md for the terminal, falling back to the raw text
// when the terminal renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func errorf(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
