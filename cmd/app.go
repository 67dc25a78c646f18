// Package cmd implements the CLI client of the portfolio manager API.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/openfolio/folio"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&registerCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&listCmd{}, "holdings")
	c.Register(&addCmd{}, "holdings")
	c.Register(&editCmd{}, "holdings")
	c.Register(&rmCmd{}, "holdings")
	c.Register(&importCmd{}, "holdings")
	c.Register(&exportCmd{}, "holdings")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&tagsCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&ratesCmd{}, "settings")
	c.Register(&targetCmd{}, "settings")
	c.Register(&presetCmd{}, "settings")
	c.Register(&localeCmd{}, "settings")
	c.Register(&topicCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", envOr("PMC_API_URL", "http://localhost:8000"), "Base URL of the portfolio API")
var statePath = flag.String("state", envOr("PMC_STATE_DIR", defaultStatePath()), "Path to the local state directory")
var verbose = flag.Bool("v", false, "Enable request logging")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pmc"
	}
	return filepath.Join(home, ".pmc")
}

// newApp builds the view-model over the configured API and state directory.
func newApp() (*folio.ViewModel, error) {
	store, err := folio.NewDirStore(*statePath)
	if err != nil {
		return nil, err
	}
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	client := folio.NewClient(*apiURL, logger)
	return folio.NewViewModel(client, store), nil
}

// openSession builds the view-model and restores the persisted session,
// failing when no valid session remains.
func openSession(ctx context.Context) (*folio.ViewModel, error) {
	vm, err := newApp()
	if err != nil {
		return nil, err
	}
	if err := vm.Init(ctx); err != nil {
		return nil, err
	}
	if !vm.IsAuthed() {
		return nil, fmt.Errorf("not logged in, run 'pmc login' first")
	}
	return vm, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
