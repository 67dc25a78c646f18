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

type listCmd struct {
	query    string
	category string
	tag      string
	sort     string
	clear    bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the visible holdings" }
func (*listCmd) Usage() string {
	return `pmc list [-q <text>] [-category <stock|crypto|etf|cash|all>] [-tag <text>] [-sort <recent|name|totalCost|quantity>] [-clear]

  Renders the holdings that pass the current filter. Any filter flag
  passed here updates the persisted filter, so a later bare 'pmc list'
  shows the same view. -clear resets the filter first.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "substring matched against asset names, case-insensitive")
	f.StringVar(&c.category, "category", "", "category filter, 'all' for no filter")
	f.StringVar(&c.tag, "tag", "", "substring matched against tags, case-insensitive")
	f.StringVar(&c.sort, "sort", "", "sort order: recent, name, totalCost or quantity")
	f.BoolVar(&c.clear, "clear", false, "reset the persisted filter before applying other flags")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	filter := vm.Filter()
	if c.clear {
		filter = folio.DefaultFilter()
	}
	changed := c.clear
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "q":
			filter.Query = c.query
		case "category":
			filter.Category = c.category
		case "tag":
			filter.Tag = c.tag
		case "sort":
			filter.Sort = folio.SortKey(c.sort)
		}
	})
	if changed {
		vm.SetFilter(filter)
	}

	locale := vm.Locale()
	display := vm.DisplayCurrency()
	visible := vm.Visible()
	view := renderer.Holdings{
		Title:    fmt.Sprintf("Holdings (%d)", len(visible)),
		Subtitle: subtitleOf(vm),
		Empty:    emptyStateOf(vm),
	}
	for _, h := range visible {
		view.Rows = append(view.Rows, renderer.HoldingRow{
			Name:        h.Name,
			Category:    folio.CategoryLabel(locale, folio.NormalizeCategory(string(h.Category))),
			Quantity:    fmt.Sprintf("%g", h.Quantity),
			Cost:        folio.FormatAmount(vm.Convert(h.TotalCost, h.Currency, display), display),
			MarketValue: folio.FormatAmount(vm.Convert(h.MarketValue(), h.Currency, display), display),
			Gain:        folio.M(vm.Convert(h.UnrealizedGain(), h.Currency, display), display).SignedString(),
			Risk:        riskLabel(locale, h.RiskLevel),
			Tags:        strings.Join(h.Tags, ", "),
		})
	}
	printMarkdown(renderer.HoldingsMarkdown(&view))
	return subcommands.ExitSuccess
}

func subtitleOf(vm *folio.ViewModel) string {
	filter := vm.Filter()
	if !filter.IsActive() {
		return ""
	}
	var parts []string
	if filter.Query != "" {
		parts = append(parts, fmt.Sprintf("query %q", filter.Query))
	}
	if filter.Category != "all" {
		parts = append(parts, "category "+filter.Category)
	}
	if filter.Tag != "" {
		parts = append(parts, fmt.Sprintf("tag %q", filter.Tag))
	}
	return "Filtered by " + strings.Join(parts, ", ")
}

func emptyStateOf(vm *folio.ViewModel) string {
	if vm.Filter().IsActive() {
		return vm.T("emptyStateFiltered", nil)
	}
	return vm.T("emptyState", nil)
}

func riskLabel(locale string, level folio.RiskLevel) string {
	switch folio.NormalizeRisk(string(level)) {
	case folio.RiskLow:
		return folio.Localize(locale, "riskLow", nil)
	case folio.RiskHigh:
		return folio.Localize(locale, "riskHigh", nil)
	default:
		return folio.Localize(locale, "riskMedium", nil)
	}
}
