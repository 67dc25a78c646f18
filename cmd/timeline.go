package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/folio/renderer"
)

type timelineCmd struct {
	limit int
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "show the mutation event log, newest first" }
func (*timelineCmd) Usage() string {
	return `pmc timeline [-n <count>]

  Shows the recorded holding mutations (add, edit, delete, import),
  newest first.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "show at most n entries, 0 for all")
}

func (c *timelineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	events := vm.Events()
	if c.limit > 0 && len(events) > c.limit {
		events = events[:c.limit]
	}
	view := renderer.Timeline{
		Title: "Timeline",
		Empty: vm.T("timelineEmpty", nil),
	}
	for _, e := range events {
		view.Entries = append(view.Entries, renderer.TimelineEntry{
			When:   e.At.Format("2006-01-02 15:04"),
			Title:  vm.T(e.Title, nil),
			Detail: e.Detail,
		})
	}
	printMarkdown(renderer.TimelineMarkdown(&view))
	return subcommands.ExitSuccess
}
