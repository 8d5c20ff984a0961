package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
	"github.com/ocarel/pocketfolio/renderer"
)

type addExpenseCmd struct {
	title      string
	amount     float64
	category   string
	date       string
	notes      string
	recurrence string
}

func (*addExpenseCmd) Name() string     { return "add" }
func (*addExpenseCmd) Synopsis() string { return "record a new expense" }
func (*addExpenseCmd) Usage() string {
	return `pfo add -t <title> -a <amount> -c <category> [-d <date>] [-n <notes>] [-r <recurrence>]

  Records an expense and rewrites the expense document.

Usage Examples:
$ pfo add -t "Groceries" -a 42.50 -c food
$ pfo add -t "Rent" -a 1450 -c housing -d 2025-08-01 -r monthly
`
}

func (p *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "t", "", "Expense title.")
	f.Float64Var(&p.amount, "a", 0, "Expense amount, in the preferred currency.")
	f.StringVar(&p.category, "c", "other", "Expense category.")
	f.StringVar(&p.date, "d", "0d", "Expense date (defaults to today).")
	f.StringVar(&p.notes, "n", "", "Free-text notes.")
	f.StringVar(&p.recurrence, "r", "", "Recurrence (daily, weekly, monthly, yearly).")
}

func (p *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := pocketfolio.ParseExpenseCategory(p.category)
	if err != nil {
		return fail(err)
	}
	on, err := pocketfolio.ParseDate(p.date)
	if err != nil {
		return fail(err)
	}
	recurrence, err := pocketfolio.ParseRecurrence(p.recurrence)
	if err != nil {
		return fail(err)
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	prefs := store.LoadPreferences()

	expense := pocketfolio.Expense{
		Title:      p.title,
		Amount:     pocketfolio.M(p.amount, prefs.Currency),
		Category:   category,
		Date:       on,
		Notes:      p.notes,
		Recurrence: recurrence,
	}
	if err := expense.Validate(); err != nil {
		return fail(err)
	}

	book := store.LoadExpenses()
	book.Add(expense)
	if err := store.SaveExpenses(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s expense %q of %s on %s\n", category, p.title, expense.Amount, on)
	return subcommands.ExitSuccess
}

type listExpensesCmd struct {
	period      string
	start       string
	date        string
	category    string
	materialize bool
}

func (*listExpensesCmd) Name() string     { return "expenses" }
func (*listExpensesCmd) Synopsis() string { return "list expenses with range totals" }
func (*listExpensesCmd) Usage() string {
	return `pfo expenses [-p <period> | -s <start_date>] [-d <end_date>] [-c <category>] [-materialize]

  Lists expenses in a date range with per-category totals. With -materialize,
  concrete occurrences of recurring expenses are appended up to the end date
  first.
`
}

func (p *listExpensesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "month", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "0d", "The end date for the range.")
	f.StringVar(&p.category, "c", "", "Only list this category.")
	f.BoolVar(&p.materialize, "materialize", false, "Append due occurrences of recurring expenses first.")
}

func (p *listExpensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := parseRange(p.period, p.start, p.date)
	if err != nil {
		return fail(err)
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	book := store.LoadExpenses()

	if p.materialize {
		if n := book.Materialize(window.To); n > 0 {
			if err := store.SaveExpenses(book); err != nil {
				return fail(err)
			}
			fmt.Printf("Materialized %d recurring expenses.\n", n)
		}
	}

	if p.category != "" {
		category, err := pocketfolio.ParseExpenseCategory(p.category)
		if err != nil {
			return fail(err)
		}
		filtered := pocketfolio.NewExpenseBook()
		for _, e := range book.Expenses(pocketfolio.ByCategory(category)) {
			filtered.Add(e)
		}
		book = filtered
	}

	printMarkdown(renderer.ExpensesMarkdown(book, window))
	return subcommands.ExitSuccess
}

type editExpenseCmd struct {
	id     string
	title  string
	amount float64
	notes  string
}

func (*editExpenseCmd) Name() string     { return "edit" }
func (*editExpenseCmd) Synopsis() string { return "replace fields of an expense by id" }
func (*editExpenseCmd) Usage() string {
	return `pfo edit -id <id> [-t <title>] [-a <amount>] [-n <notes>]

  Replaces the stored expense with the same id. This is the only way to
  modify a persisted expense.
`
}

func (p *editExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the expense to edit.")
	f.StringVar(&p.title, "t", "", "New title.")
	f.Float64Var(&p.amount, "a", 0, "New amount.")
	f.StringVar(&p.notes, "n", "", "New notes.")
}

func (p *editExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	book := store.LoadExpenses()
	expense, ok := book.Get(p.id)
	if !ok {
		return fail(fmt.Errorf("no expense with id %q", p.id))
	}
	if p.title != "" {
		expense.Title = p.title
	}
	if p.amount != 0 {
		expense.Amount = pocketfolio.M(p.amount, expense.Amount.Currency())
	}
	if p.notes != "" {
		expense.Notes = p.notes
	}
	if err := expense.Validate(); err != nil {
		return fail(err)
	}
	if err := book.Replace(expense); err != nil {
		return fail(err)
	}
	if err := store.SaveExpenses(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated expense %s\n", p.id)
	return subcommands.ExitSuccess
}

type removeExpenseCmd struct {
	id string
}

func (*removeExpenseCmd) Name() string     { return "rm" }
func (*removeExpenseCmd) Synopsis() string { return "delete an expense by id" }
func (*removeExpenseCmd) Usage() string {
	return `pfo rm -id <id>

  Deletes the expense and rewrites the expense document without it.
`
}

func (p *removeExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the expense to delete.")
}

func (p *removeExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	book := store.LoadExpenses()
	if err := book.Remove(p.id); err != nil {
		return fail(err)
	}
	if err := store.SaveExpenses(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted expense %s\n", p.id)
	return subcommands.ExitSuccess
}

// parseRange resolves the period/start/end flag triple shared by the listing
// commands.
func parseRange(period, start, end string) (pocketfolio.Range, error) {
	endDate, err := pocketfolio.ParseDate(end)
	if err != nil {
		return pocketfolio.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	if start != "" {
		startDate, err := pocketfolio.ParseDate(start)
		if err != nil {
			return pocketfolio.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return pocketfolio.NewRange(startDate, endDate), nil
	}
	p, err := pocketfolio.ParsePeriod(period)
	if err != nil {
		return pocketfolio.Range{}, err
	}
	return p.Range(endDate), nil
}
