package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
)

type addHoldingCmd struct {
	symbol string
	name   string
	kind   string
	shares float64
	price  float64
	date   string
	risk   string
	notes  string
}

func (*addHoldingCmd) Name() string     { return "buy" }
func (*addHoldingCmd) Synopsis() string { return "add an investment holding to the portfolio" }
func (*addHoldingCmd) Usage() string {
	return `pfo buy -s <symbol> -q <shares> -p <price> [-name <name>] [-type <type>] [-d <date>] [-risk <tier>] [-n <notes>]

  Adds a holding. The current price starts at the purchase price until the
  simulator or a later edit moves it.

Usage Examples:
$ pfo buy -s AAPL -q 10 -p 178.20 -name "Apple Inc." -type stock -risk medium
$ pfo buy -s BTC -q 0.5 -p 58000 -type crypto -risk high
`
}

func (p *addHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Ticker symbol.")
	f.StringVar(&p.name, "name", "", "Display name (defaults to the symbol).")
	f.StringVar(&p.kind, "type", "stock", "Asset type (stock, bond, etf, crypto, mutual-fund, real-estate, commodity, cash).")
	f.Float64Var(&p.shares, "q", 0, "Share count.")
	f.Float64Var(&p.price, "p", 0, "Purchase price per share.")
	f.StringVar(&p.date, "d", "0d", "Purchase date (defaults to today).")
	f.StringVar(&p.risk, "risk", "medium", "Risk tier (low, medium, high).")
	f.StringVar(&p.notes, "n", "", "Free-text notes.")
}

func (p *addHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := pocketfolio.ParseAssetType(p.kind)
	if err != nil {
		return fail(err)
	}
	risk, err := pocketfolio.ParseRiskTier(p.risk)
	if err != nil {
		return fail(err)
	}
	on, err := pocketfolio.ParseDate(p.date)
	if err != nil {
		return fail(err)
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	prefs := store.LoadPreferences()

	name := p.name
	if name == "" {
		name = p.symbol
	}
	holding := pocketfolio.NewHolding(p.symbol, name, kind,
		pocketfolio.Q(p.shares), pocketfolio.M(p.price, prefs.Currency), on, risk)
	holding.Notes = p.notes
	if err := holding.Validate(); err != nil {
		return fail(err)
	}

	portfolio := store.LoadPortfolio()
	portfolio.Add(holding)
	if err := store.SavePortfolio(portfolio); err != nil {
		return fail(err)
	}
	fmt.Printf("Added %s %s (%s) to portfolio %q\n", holding.Shares, holding.Symbol, kind, portfolio.Name)
	return subcommands.ExitSuccess
}

type removeHoldingCmd struct {
	id     string
	symbol string
}

func (*removeHoldingCmd) Name() string     { return "sell" }
func (*removeHoldingCmd) Synopsis() string { return "remove a holding from the portfolio" }
func (*removeHoldingCmd) Usage() string {
	return `pfo sell [-id <id> | -s <symbol>]

  Removes a holding. Aggregate metrics are derived, so totals and allocation
  reflect the removal on the next report.
`
}

func (p *removeHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the holding to remove.")
	f.StringVar(&p.symbol, "s", "", "Symbol of the holding to remove (first match).")
}

func (p *removeHoldingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	portfolio := store.LoadPortfolio()

	id := p.id
	if id == "" && p.symbol != "" {
		holding, ok := portfolio.BySymbol(strings.ToUpper(p.symbol))
		if !ok {
			return fail(fmt.Errorf("no holding with symbol %q", p.symbol))
		}
		id = holding.ID
	}
	if err := portfolio.Remove(id); err != nil {
		return fail(err)
	}
	if err := store.SavePortfolio(portfolio); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed holding %s\n", id)
	return subcommands.ExitSuccess
}
