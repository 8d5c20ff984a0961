package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/ocarel/pocketfolio"
)

// ExpensesMarkdown renders a list of expenses with its range totals.
func ExpensesMarkdown(book *pocketfolio.ExpenseBook, r pocketfolio.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses %s to %s", r.From, r.To))

	table := md.TableSet{Header: []string{"Date", "Title", "Category", "Amount"}}
	for _, e := range book.ByDateDesc(r) {
		title := e.Title
		if e.Recurrence != pocketfolio.RecurNone {
			title += fmt.Sprintf(" (%s)", e.Recurrence)
		}
		table.Rows = append(table.Rows, []string{
			e.Date.String(), title, string(e.Category), e.Amount.String(),
		})
	}
	doc.Table(table)

	doc.H2("By Category")
	totals := book.TotalsByCategory(r)
	categories := make([]pocketfolio.ExpenseCategory, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	byCategory := md.TableSet{Header: []string{"Category", "Total"}}
	for _, c := range categories {
		byCategory.Rows = append(byCategory.Rows, []string{string(c), totals[c].String()})
	}
	doc.Table(byCategory)

	if series := book.MonthlyTotals(r); len(series) > 1 {
		doc.H2("By Month")
		byMonth := md.TableSet{Header: []string{"Month", "Total"}}
		for _, point := range series {
			byMonth.Rows = append(byMonth.Rows, []string{
				point.Month.From.Format("January 2006"), cell(point.Total),
			})
		}
		doc.Table(byMonth)
	}

	doc.PlainText(fmt.Sprintf("Total: %s | Daily average: %s",
		cell(book.Total(r)), cell(book.AveragePerDay(r))))
	return doc.String()
}
