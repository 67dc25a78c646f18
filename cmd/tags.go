package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type tagsCmd struct{}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "show tag insights over the full portfolio" }
func (*tagsCmd) Usage() string {
	return `pmc tags

  Aggregates tags case-insensitively across all holdings, ordered by
  converted cost descending.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	insights := vm.TagInsights()
	if len(insights) == 0 {
		fmt.Println(vm.T("emptyState", nil))
		return subcommands.ExitSuccess
	}
	for _, in := range insights {
		fmt.Printf("  %s: %d holdings, %s (%s)\n", in.Tag, in.Count, in.Cost, in.Share)
	}
	return subcommands.ExitSuccess
}
