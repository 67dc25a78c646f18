package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	holdingFlags
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "overwrite an existing holding" }
func (*editCmd) Usage() string {
	return `pmc edit -id <id> -name <name> -quantity <n> -cost <n> [field flags...]

  Overwrites the holding identified by -id with the given fields. The
  record keeps its position in the list.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identifier of the holding to edit")
	c.holdingFlags.set(f)
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	msg, err := vm.Save(ctx, c.input(), c.id)
	if err != nil {
		reportSaveError(vm, msg, err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
