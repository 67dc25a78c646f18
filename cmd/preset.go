package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type presetCmd struct {
	save  string
	apply string
	rm    string
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "save, apply or remove filter presets" }
func (*presetCmd) Usage() string {
	return `pmc preset [-save <name> | -apply <name> | -rm <name>]

  -save captures the current filter under the given name, overwriting a
  preset with the same name. -apply restores a saved filter. With no
  flag the saved presets are listed.
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.save, "save", "", "save the current filter under this name")
	f.StringVar(&c.apply, "apply", "", "apply the preset with this name")
	f.StringVar(&c.rm, "rm", "", "remove the preset with this name")
}

func (c *presetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	switch {
	case c.save != "":
		err = vm.SavePreset(c.save)
	case c.apply != "":
		err = vm.ApplyPreset(c.apply)
	case c.rm != "":
		err = vm.RemovePreset(c.rm)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	presets := vm.Presets()
	if len(presets) == 0 {
		fmt.Println(vm.T("presetEmpty", nil))
		return subcommands.ExitSuccess
	}
	for _, p := range presets {
		fmt.Printf("  %s: query=%q category=%s sort=%s tag=%q\n",
			p.Name, p.Filter.Query, p.Filter.Category, p.Filter.Sort, p.Filter.Tag)
	}
	return subcommands.ExitSuccess
}
