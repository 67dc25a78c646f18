package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

type ratesCmd struct {
	set     string
	display string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or set currency conversion rates" }
func (*ratesCmd) Usage() string {
	return `pmc rates [-set <CODE=USD_RATE>] [-display <code>]

  Shows the conversion table. Each rate is the USD value of one unit of
  the currency; conversions pivot through USD. -set overrides one rate,
  -display switches the persisted display currency.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "override one rate, e.g. EUR=1.09")
	f.StringVar(&c.display, "display", "", "display currency, persisted for later runs")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.set != "" {
		code, value, ok := strings.Cut(c.set, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -set expects CODE=RATE")
			return subcommands.ExitUsageError
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid rate %q\n", value)
			return subcommands.ExitUsageError
		}
		vm.SetRate(strings.ToUpper(strings.TrimSpace(code)), rate)
	}
	if c.display != "" {
		vm.SetDisplayCurrency(c.display)
	}

	rates := vm.Rates()
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	fmt.Printf("Display currency: %s\n\n", vm.DisplayCurrency())
	for _, code := range codes {
		fmt.Printf("  %s = %.4f USD\n", code, rates[code])
	}
	return subcommands.ExitSuccess
}
