package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export data for user-facing backup" }
func (*exportCmd) Usage() string {
	return `pfo export [-o <file>] (expenses | holdings | settings)

  Renders expenses or holdings as CSV, or the settings as a JSON string,
  to stdout or to a file. These are backup formats for the user, not the
  store's own documents.

Usage Examples:
$ pfo export expenses > expenses.csv
$ pfo export -o holdings.csv holdings
$ pfo export settings
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write to this file instead of stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			return fail(fmt.Errorf("could not create %q: %w", p.output, err))
		}
		defer file.Close()
		out = file
	}

	switch what := f.Arg(0); what {
	case "expenses":
		err = pocketfolio.ExportExpensesCSV(out, store.LoadExpenses())
	case "holdings":
		err = pocketfolio.ExportHoldingsCSV(out, store.LoadPortfolio())
	case "settings":
		var settings string
		settings, err = pocketfolio.ExportSettingsJSON(store.LoadPreferences())
		if err == nil {
			_, err = fmt.Fprintln(out, settings)
		}
	default:
		return fail(fmt.Errorf("unknown export target %q (want expenses, holdings or settings)", what))
	}
	if err != nil {
		return fail(err)
	}
	if p.output != "" {
		fmt.Printf("Exported %s to %s\n", f.Arg(0), p.output)
	}
	return subcommands.ExitSuccess
}
