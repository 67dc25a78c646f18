package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import holdings from a CSV file" }
func (*importCmd) Usage() string {
	return `pmc import -file <path>

  Creates one holding per CSV row, in order. The import stops at the
  first invalid or rejected row; rows already created are kept. Use '-'
  to read from stdin. See 'pmc topic csv' for the accepted columns.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV file to import, '-' for stdin")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	in := os.Stdin
	if c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	count, err := vm.ImportCSV(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v (%d rows imported before the failure)\n", vm.T("importFailed", nil), err, count)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %d\n", vm.T("importSuccess", nil), count)
	return subcommands.ExitSuccess
}
