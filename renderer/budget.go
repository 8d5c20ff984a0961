package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ocarel/pocketfolio"
)

// BudgetMarkdown renders the budget-versus-spend rollup for one month.
func BudgetMarkdown(r pocketfolio.MonthReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budgets for %s %d", r.Month, r.Year))
	if len(r.Statuses) == 0 {
		doc.PlainText("No budgets set for this month.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Category", "Budget", "Spent", "Remaining", "Used"}}
	for _, s := range r.Statuses {
		used := s.Used().String()
		if s.Over() {
			used += " (over)"
		}
		table.Rows = append(table.Rows, []string{
			string(s.Budget.Category), cell(s.Budget.Amount),
			cell(s.Spent), s.Remaining.SignedString(), used,
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total: %s budgeted, %s spent.",
		r.TotalBudgeted, cell(r.TotalSpent)))
	if !r.Unbudgeted.IsZero() {
		doc.PlainText(fmt.Sprintf("Unbudgeted spending: %s.", r.Unbudgeted))
	}
	if over := r.OverBudget(); len(over) > 0 {
		doc.PlainText(fmt.Sprintf("Over budget in %d categories.", len(over)))
	}
	return doc.String()
}
