package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
)

type simulateCmd struct {
	ticks int
	watch bool
	seed  int64
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "move holding prices with the random-walk simulator" }
func (*simulateCmd) Usage() string {
	return `pfo simulate [-n <ticks>] [-watch] [-seed <n>]

  Applies simulated price movement to every holding and saves the portfolio.
  With -watch, keeps ticking on the preferred refresh interval until
  interrupted. There is no real market data behind this.

Usage Examples:
$ pfo simulate -n 5
$ pfo simulate -watch
`
}

func (p *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.ticks, "n", 1, "Number of price ticks to apply.")
	f.BoolVar(&p.watch, "watch", false, "Keep ticking until interrupted.")
	f.Int64Var(&p.seed, "seed", 0, "Seed for reproducible price movement (0 means random).")
}

func (p *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	portfolio := store.LoadPortfolio()
	prefs := store.LoadPreferences()

	sim := pocketfolio.NewSimulator(portfolio, logger())
	if p.seed != 0 {
		sim.Seed(p.seed)
	}

	if p.watch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		fmt.Printf("Ticking every %s, interrupt to stop...\n", prefs.RefreshInterval())
		sim.Run(ctx, prefs.RefreshInterval(), func() error {
			return store.SavePortfolio(portfolio)
		})
		fmt.Println("Stopped.")
		return subcommands.ExitSuccess
	}

	for i := 0; i < p.ticks; i++ {
		sim.Step()
	}
	if err := store.SavePortfolio(portfolio); err != nil {
		return fail(err)
	}
	fmt.Printf("Applied %d price ticks; portfolio value is now %s\n", p.ticks, portfolio.TotalMarketValue())
	return subcommands.ExitSuccess
}
