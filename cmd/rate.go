package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	amount string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the current USD/KRW rate" }
func (*rateCmd) Usage() string {
	return `etw rate [-usd <amount>]

  Shows the current USD/KRW exchange rate. With -usd, also converts the
  given USD amount to KRW.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "usd", "", "USD amount to convert")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return errorf("%v", err)
	}

	rate := a.rates.USDKRW()
	fmt.Printf("USD/KRW %s\n", rate)

	if c.amount != "" {
		usd, err := decimal.NewFromString(c.amount)
		if err != nil {
			return errorf("invalid amount %q: %v", c.amount, err)
		}
		fmt.Printf("$%s = ₩%s\n", usd, usd.Mul(rate).Round(0))
	}
	return subcommands.ExitSuccess
}
