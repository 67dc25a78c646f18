package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/openfolio/folio"
	"github.com/openfolio/folio/renderer"
)

type summaryCmd struct {
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show portfolio statistics and target tracking" }
func (*summaryCmd) Usage() string {
	return `pmc summary [-currency <code>]

  Shows the statistics of the visible holdings, the per-category
  allocation against targets, the budget progress and the risk score.
  -currency switches the persisted display currency first.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "display currency, persisted for later runs")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vm, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.currency != "" {
		vm.SetDisplayCurrency(c.currency)
	}

	locale := vm.Locale()
	stats := vm.Statistics()
	view := renderer.Summary{
		Title: "Portfolio summary",
		Stats: []renderer.Stat{
			{Label: vm.T("statAssets", nil), Value: fmt.Sprintf("%d", stats.AssetCount)},
			{Label: vm.T("statTotalCost", nil), Value: stats.TotalCost.String()},
			{Label: vm.T("statMarketValue", nil), Value: stats.MarketValue.String()},
			{Label: vm.T("statAverageCost", nil), Value: stats.AverageCost.String()},
			{Label: vm.T("statUnrealized", nil), Value: stats.Gain.SignedString()},
		},
		TargetTotal: vm.T("targetTotal", map[string]string{"total": fmt.Sprintf("%g", float64(vm.TargetTotal()))}),
	}
	for _, slice := range vm.Allocation() {
		view.Allocations = append(view.Allocations, renderer.AllocationRow{
			Category: folio.CategoryLabel(locale, slice.Category),
			Cost:     slice.Cost.String(),
			Actual:   slice.Actual.String(),
			Target:   slice.Target.String(),
			Delta:    deltaPhrase(vm, slice),
		})
	}
	if vm.Budget() > 0 {
		view.Budget = vm.T("budgetProgress", map[string]string{"value": vm.BudgetProgress().String()})
		if float64(vm.BudgetProgress()) > 100 {
			view.Budget += " " + vm.T("budgetOver", nil)
		}
	}
	if stats.AssetCount > 0 {
		_, score := vm.RiskBreakdown()
		view.RiskScore = fmt.Sprintf("%.2f / 3", score)
	}
	printMarkdown(renderer.SummaryMarkdown(&view))
	return subcommands.ExitSuccess
}

// deltaPhrase localizes the over/under/match grade of one allocation.
func deltaPhrase(vm *folio.ViewModel, slice folio.AllocationSlice) string {
	value := fmt.Sprintf("%g", float64(slice.Delta))
	switch slice.Status {
	case folio.TargetOver:
		return vm.T("targetDeltaOver", map[string]string{"value": value})
	case folio.TargetUnder:
		return vm.T("targetDeltaUnder", map[string]string{"value": fmt.Sprintf("%g", -float64(slice.Delta))})
	default:
		return vm.T("targetDeltaMatch", nil)
	}
}
