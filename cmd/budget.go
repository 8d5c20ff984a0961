package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
	"github.com/ocarel/pocketfolio/renderer"
)

type setBudgetCmd struct {
	category string
	amount   float64
	month    string
}

func (*setBudgetCmd) Name() string     { return "budget" }
func (*setBudgetCmd) Synopsis() string { return "set the spending limit for a category and month" }
func (*setBudgetCmd) Usage() string {
	return `pfo budget -c <category> -a <amount> [-m <date-in-month>]

  Upserts the budget bucket for (category, month, year). The consumed amount
  is never stored; it is recomputed from the expenses on every status report.

Usage Examples:
$ pfo budget -c food -a 400
$ pfo budget -c travel -a 1200 -m 2025-12-01
`
}

func (p *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Expense category to budget.")
	f.Float64Var(&p.amount, "a", 0, "Budgeted amount for the month.")
	f.StringVar(&p.month, "m", "0d", "Any date inside the target month (defaults to today).")
}

func (p *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := pocketfolio.ParseExpenseCategory(p.category)
	if err != nil {
		return fail(err)
	}
	on, err := pocketfolio.ParseDate(p.month)
	if err != nil {
		return fail(err)
	}

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	prefs := store.LoadPreferences()

	budgets := store.LoadBudgets()
	budget := pocketfolio.Budget{
		Category: category,
		Month:    on.Month(),
		Year:     on.Year(),
		Amount:   pocketfolio.M(p.amount, prefs.Currency),
	}
	if err := budgets.Set(budget); err != nil {
		return fail(err)
	}
	if err := store.SaveBudgets(budgets); err != nil {
		return fail(err)
	}
	fmt.Printf("Budget for %s in %s %d set to %s\n", category, on.Month(), on.Year(), budget.Amount)
	return subcommands.ExitSuccess
}

type budgetStatusCmd struct {
	month string
	alert bool
}

func (*budgetStatusCmd) Name() string     { return "budgets" }
func (*budgetStatusCmd) Synopsis() string { return "show the budget-versus-spend rollup for a month" }
func (*budgetStatusCmd) Usage() string {
	return `pfo budgets [-m <date-in-month>] [-alert]

  Shows every budget bucket of the month with its recomputed spend, percent
  used and over-budget flags. With -alert, only lists the buckets past the
  configured alert threshold.
`
}

func (p *budgetStatusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "0d", "Any date inside the month to report on.")
	f.BoolVar(&p.alert, "alert", false, "Only show buckets past the alert threshold.")
}

func (p *budgetStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := pocketfolio.ParseDate(p.month)
	if err != nil {
		return fail(err)
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}

	report := store.LoadBudgets().Report(store.LoadExpenses(), on.Year(), on.Month())
	if p.alert {
		report = filterAlerts(report, store.LoadPreferences().BudgetAlertThreshold)
	}
	printMarkdown(renderer.BudgetMarkdown(report))
	return subcommands.ExitSuccess
}

// filterAlerts keeps only the statuses at or past the threshold percent.
func filterAlerts(r pocketfolio.MonthReport, threshold int) pocketfolio.MonthReport {
	filtered := pocketfolio.MonthReport{
		Year:          r.Year,
		Month:         r.Month,
		TotalBudgeted: r.TotalBudgeted,
		TotalSpent:    r.TotalSpent,
		Unbudgeted:    r.Unbudgeted,
	}
	for _, s := range r.Statuses {
		if float64(s.Used()) >= float64(threshold) {
			filtered.Statuses = append(filtered.Statuses, s)
		}
	}
	return filtered
}
