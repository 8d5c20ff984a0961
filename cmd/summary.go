package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio report" }
func (*summaryCmd) Usage() string {
	return `pfo summary

  Shows the holdings, total value and gain, allocation versus target, the
  weighted risk score and the best and worst performers. Every number is
  recomputed from the stored holdings.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PortfolioMarkdown(store.LoadPortfolio()))
	return subcommands.ExitSuccess
}
