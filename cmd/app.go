// Package cmd implements the CLI application to manage a pocketfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/ocarel/pocketfolio"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to declare the commands, and relies on the
// commander to Execute the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addExpenseCmd{}, "expenses")
	c.Register(&listExpensesCmd{}, "expenses")
	c.Register(&editExpenseCmd{}, "expenses")
	c.Register(&removeExpenseCmd{}, "expenses")

	c.Register(&setBudgetCmd{}, "budgets")
	c.Register(&budgetStatusCmd{}, "budgets")

	c.Register(&addHoldingCmd{}, "portfolio")
	c.Register(&removeHoldingCmd{}, "portfolio")
	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&simulateCmd{}, "portfolio")

	c.Register(&refreshNewsCmd{}, "news")
	c.Register(&listNewsCmd{}, "news")
	c.Register(&trendingCmd{}, "news")
	c.Register(&bookmarkCmd{}, "news")

	c.Register(&prefsCmd{}, "settings")
	c.Register(&exportCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the folder holding the JSON documents")
var verbose = flag.Bool("v", false, "Enable debug logging")

// defaultDataDir resolves the data directory from an optional .env file and
// the environment, falling back to a dotted folder in the working directory.
func defaultDataDir() string {
	_ = godotenv.Load() // a missing .env is the normal case
	if dir := os.Getenv("POCKETFOLIO_DATA_DIR"); dir != "" {
		return dir
	}
	return ".pocketfolio"
}

// logger builds the application logger honoring the -v flag.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// OpenStore opens the application store at the configured data directory.
func OpenStore() (*pocketfolio.Store, error) {
	return pocketfolio.NewStore(*dataDir, logger())
}

// printMarkdown renders a markdown report for the terminal. When the
// renderer fails the raw markdown is still printed: losing the styling is
// never a reason to lose the report.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Println(src)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status, the single way all
// commands surface an error to the user.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
