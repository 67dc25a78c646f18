package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
	"github.com/openfolio/folio/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the portfolio value trend" }
func (*historyCmd) Usage() string {
	return `pmc history

  Shows the recorded total-value snapshots, oldest first, with a bar
  proportional to the largest value.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	history := vm.History()
	max := 0.0
	for _, p := range history.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	view := renderer.History{
		Title: "Value history",
		Empty: vm.T("timelineEmpty", nil),
	}
	display := vm.DisplayCurrency()
	for _, p := range history.Points {
		width := 0
		if max > 0 {
			width = int(p.Value / max * 20)
		}
		view.Points = append(view.Points, renderer.HistoryPoint{
			When:  p.At.Format("2006-01-02 15:04"),
			Value: folio.FormatAmount(p.Value, display),
			Bar:   strings.Repeat("█", width),
		})
	}
	printMarkdown(renderer.HistoryMarkdown(&view))
	return subcommands.ExitSuccess
}
