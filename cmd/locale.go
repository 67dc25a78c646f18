package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type localeCmd struct{}

func (*localeCmd) Name() string     { return "locale" }
func (*localeCmd) Synopsis() string { return "show or switch the interface language" }
func (*localeCmd) Usage() string {
	return `pmc locale [en-US|zh-CN]

  Shows the persisted locale, or switches it when an argument is given.
  Unsupported values fall back to en-US.
`
}

func (c *localeCmd) SetFlags(f *flag.FlagSet) {}

func (c *localeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() > 0 {
		vm.SetLocale(f.Arg(0))
	}
	fmt.Println(vm.Locale())
	return subcommands.ExitSuccess
}
