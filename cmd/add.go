package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
)

type addCmd struct {
	holdingFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new holding" }
func (*addCmd) Usage() string {
	return `pmc add -name <name> -quantity <n> -cost <n> [-category ...] [-price ...] [-currency ...] [-risk ...] [-tags ...] [-note ...]

  Creates a holding through the portfolio API and puts it at the top of
  the list. All field checks run before the network call; every violated
  field is reported at once.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.holdingFlags.set(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	msg, err := vm.Save(ctx, c.input(), "")
	if err != nil {
		reportSaveError(vm, msg, err)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}

// reportSaveError prints the localized notice, plus one line per violated
// field when the failure is a local validation error.
func reportSaveError(vm *folio.ViewModel, msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	var verr *folio.ValidationError
	if errors.As(err, &verr) {
		for field, key := range verr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, vm.T(key, nil))
		}
	}
}
