package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type prefsCmd struct{}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or change user preferences" }
func (*prefsCmd) Usage() string {
	return `pfo prefs [<key> <value>]

  Without arguments, prints all preferences. With a key and a value, sets
  that preference and rewrites the settings document.

  Keys: currency, theme, notifications, budget-alert-threshold,
  price-refresh-seconds, news-retention-days.

Usage Examples:
$ pfo prefs
$ pfo prefs currency EUR
$ pfo prefs notifications off
`
}

func (p *prefsCmd) SetFlags(f *flag.FlagSet) {}

func (p *prefsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	prefs := store.LoadPreferences()

	switch f.NArg() {
	case 0:
		fmt.Printf("currency: %s\n", prefs.Currency)
		fmt.Printf("theme: %s\n", prefs.Theme)
		fmt.Printf("notifications: %t\n", prefs.Notifications)
		fmt.Printf("budget-alert-threshold: %d\n", prefs.BudgetAlertThreshold)
		fmt.Printf("price-refresh-seconds: %d\n", prefs.PriceRefreshSeconds)
		fmt.Printf("news-retention-days: %d\n", prefs.NewsRetentionDays)
		return subcommands.ExitSuccess
	case 2:
		if err := prefs.Set(f.Arg(0), f.Arg(1)); err != nil {
			return fail(err)
		}
		if err := store.SavePreferences(prefs); err != nil {
			return fail(err)
		}
		fmt.Printf("Set %s to %s\n", f.Arg(0), f.Arg(1))
		return subcommands.ExitSuccess
	default:
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}
}
