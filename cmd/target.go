package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
)

type targetCmd struct {
	set    string
	budget float64
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "show or set allocation targets and the monthly budget" }
func (*targetCmd) Usage() string {
	return `pmc target [-set <category=percent>] [-budget <amount>]

  Shows the per-category target percentages. Targets are clamped to
  0-100 and their sum is informational, never forced to 100. -budget
  sets the monthly investment budget, 0 clears it.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "set one target, e.g. stock=60")
	f.Float64Var(&c.budget, "budget", -1, "monthly budget in the display currency, 0 clears it")
}

func (c *targetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.set != "" {
		name, value, ok := strings.Cut(c.set, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -set expects category=percent")
			return subcommands.ExitUsageError
		}
		percent, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid percent %q\n", value)
			return subcommands.ExitUsageError
		}
		vm.SetTarget(folio.NormalizeCategory(name), percent)
	}
	if c.budget >= 0 {
		vm.SetBudget(c.budget)
	}

	locale := vm.Locale()
	targets := vm.Targets()
	for _, cat := range folio.Categories {
		fmt.Printf("  %s: %g%%\n", folio.CategoryLabel(locale, cat), targets[cat])
	}
	fmt.Println(vm.T("targetTotal", map[string]string{"total": fmt.Sprintf("%g", float64(vm.TargetTotal()))}))
	if vm.Budget() > 0 {
		fmt.Printf("Budget: %s\n", folio.FormatAmount(vm.Budget(), vm.DisplayCurrency()))
	}
	return subcommands.ExitSuccess
}
