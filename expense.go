package pocketfolio

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ExpenseCategory is the closed set of spending classification tags.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryHousing       ExpenseCategory = "housing"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryHealth        ExpenseCategory = "health"
	CategoryEducation     ExpenseCategory = "education"
	CategoryTravel        ExpenseCategory = "travel"
	CategoryOther         ExpenseCategory = "other"
)

// ExpenseCategories returns all categories in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryFood, CategoryTransport, CategoryHousing, CategoryUtilities,
		CategoryEntertainment, CategoryShopping, CategoryHealth,
		CategoryEducation, CategoryTravel, CategoryOther,
	}
}

// ParseExpenseCategory parses a category name, rejecting anything outside the
// closed set.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	c := ExpenseCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ExpenseCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

// Recurrence describes how often a recurring expense repeats.
type Recurrence string

const (
	RecurNone    Recurrence = ""
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// ParseRecurrence parses a recurrence name. The empty string means none.
func ParseRecurrence(s string) (Recurrence, error) {
	switch r := Recurrence(strings.ToLower(strings.TrimSpace(s))); r {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly, RecurYearly:
		return r, nil
	default:
		return RecurNone, fmt.Errorf("unknown recurrence: %q", s)
	}
}

// Expense is a single spending record. Once persisted it is immutable except
// via full replace-by-id.
type Expense struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Amount     Money           `json:"amount"`
	Category   ExpenseCategory `json:"category"`
	Date       Date            `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	Recurrence Recurrence      `json:"recurrence,omitempty"`
}

// Validate checks the expense for correctness.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("expense title must not be empty")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", e.Amount)
	}
	if _, err := ParseExpenseCategory(string(e.Category)); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return fmt.Errorf("expense date must be set")
	}
	return nil
}

// Due reports whether a recurring expense recurs on the given date.
// The expense's own date never counts as a recurrence.
func (e Expense) Due(on Date) bool {
	if e.Recurrence == RecurNone || !on.After(e.Date) {
		return false
	}
	switch e.Recurrence {
	case RecurDaily:
		return true
	case RecurWeekly:
		return on.Weekday() == e.Date.Weekday()
	case RecurMonthly:
		return on.Day() == e.Date.Day()
	case RecurYearly:
		return on.Day() == e.Date.Day() && on.Month() == e.Date.Month()
	default:
		return false
	}
}

// ExpenseBook holds the in-memory expense collection.
//
// Expenses are kept in chronological order, ties broken by id, so that
// persisting the book is deterministic.
type ExpenseBook struct {
	expenses []Expense
}

// NewExpenseBook creates an empty book.
func NewExpenseBook() *ExpenseBook {
	return &ExpenseBook{expenses: make([]Expense, 0)}
}

// NewExpenseBookOf creates a book over the given expenses.
func NewExpenseBookOf(expenses []Expense) *ExpenseBook {
	b := &ExpenseBook{expenses: expenses}
	b.stableSort()
	return b
}

// Len returns the number of expenses in the book.
func (b *ExpenseBook) Len() int { return len(b.expenses) }

// Add appends expenses to the book, assigning an id to any expense without
// one, and maintains the chronological order.
func (b *ExpenseBook) Add(expenses ...Expense) {
	for _, e := range expenses {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		b.expenses = append(b.expenses, e)
	}
	b.stableSort()
}

// Get returns the expense with the given id.
func (b *ExpenseBook) Get(id string) (Expense, bool) {
	for _, e := range b.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return Expense{}, false
}

// Replace substitutes the stored expense having the same id. It is the only
// way to modify a persisted expense.
func (b *ExpenseBook) Replace(e Expense) error {
	for i, old := range b.expenses {
		if old.ID == e.ID {
			b.expenses[i] = e
			b.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no expense with id %q", e.ID)
}

// Remove deletes the expense with the given id by rewriting the collection
// with the target filtered out.
func (b *ExpenseBook) Remove(id string) error {
	kept := make([]Expense, 0, len(b.expenses))
	found := false
	for _, e := range b.expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("no expense with id %q", id)
	}
	b.expenses = kept
	return nil
}

func (b *ExpenseBook) stableSort() {
	sort.SliceStable(b.expenses, func(i, j int) bool {
		if b.expenses[i].Date != b.expenses[j].Date {
			return b.expenses[i].Date.Before(b.expenses[j].Date)
		}
		return b.expenses[i].ID < b.expenses[j].ID
	})
}

// AcceptAllExpenses is a predicate that accepts every expense.
func AcceptAllExpenses(Expense) bool { return true }

// ByCategory returns a predicate that filters expenses by category.
func ByCategory(c ExpenseCategory) func(Expense) bool {
	return func(e Expense) bool { return e.Category == c }
}

// InRange returns a predicate that filters expenses by date range.
func InRange(r Range) func(Expense) bool {
	return func(e Expense) bool { return r.Contains(e.Date) }
}

// Expenses returns an iterator over expenses accepted by any of the filters,
// in chronological order.
func (b *ExpenseBook) Expenses(filters ...func(Expense) bool) iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range b.expenses {
			accept := false
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// All returns a copy of all expenses in chronological order.
func (b *ExpenseBook) All() []Expense {
	out := make([]Expense, len(b.expenses))
	copy(out, b.expenses)
	return out
}

// ByDateDesc returns all expenses in a range sorted newest first, ties broken
// by id.
func (b *ExpenseBook) ByDateDesc(r Range) []Expense {
	var out []Expense
	for _, e := range b.Expenses(InRange(r)) {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[j].Date.Before(out[i].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByAmountDesc returns all expenses in a range sorted by amount, largest
// first.
func (b *ExpenseBook) ByAmountDesc(r Range) []Expense {
	var out []Expense
	for _, e := range b.Expenses(InRange(r)) {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Amount.LessThan(out[i].Amount)
	})
	return out
}

// Total computes the sum of all expenses within the range.
func (b *ExpenseBook) Total(r Range) Money {
	var total Money
	for _, e := range b.Expenses(InRange(r)) {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal computes the sum of expenses in one category within the range.
func (b *ExpenseBook) CategoryTotal(c ExpenseCategory, r Range) Money {
	var total Money
	for _, e := range b.Expenses(InRange(r)) {
		if e.Category == c {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalsByCategory computes per-category sums within the range. Categories
// with no spending are absent from the result.
func (b *ExpenseBook) TotalsByCategory(r Range) map[ExpenseCategory]Money {
	totals := make(map[ExpenseCategory]Money)
	for _, e := range b.Expenses(InRange(r)) {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// MonthTotal is one point of a monthly spending series.
type MonthTotal struct {
	Month Range
	Total Money
}

// MonthlyTotals computes the spending total of every month overlapping the
// range, oldest first. Months without spending still appear, with a zero
// total.
func (b *ExpenseBook) MonthlyTotals(r Range) []MonthTotal {
	var series []MonthTotal
	for month := range r.Periods(Monthly) {
		series = append(series, MonthTotal{Month: month, Total: b.Total(month)})
	}
	return series
}

// Largest returns the single largest expense within the range.
func (b *ExpenseBook) Largest(r Range) (Expense, bool) {
	var largest Expense
	found := false
	for _, e := range b.Expenses(InRange(r)) {
		if !found || largest.Amount.LessThan(e.Amount) {
			largest = e
			found = true
		}
	}
	return largest, found
}

// AveragePerDay computes the mean daily spend over the range. An empty range
// or empty book yields zero.
func (b *ExpenseBook) AveragePerDay(r Range) Money {
	days := 0
	for range r.Days() {
		days++
	}
	return b.Total(r).Div(Q(days))
}

// Materialize appends one concrete occurrence for every recurring expense due
// on each day up to and including 'through'. Occurrences get fresh ids and no
// recurrence of their own. An occurrence already present (same title,
// category and date) is not duplicated. It returns the number of expenses
// appended.
func (b *ExpenseBook) Materialize(through Date) int {
	exists := make(map[string]bool, len(b.expenses))
	key := func(e Expense) string {
		return fmt.Sprintf("%s|%s|%s", e.Title, e.Category, e.Date)
	}
	for _, e := range b.expenses {
		exists[key(e)] = true
	}

	var occurrences []Expense
	for _, template := range b.expenses {
		if template.Recurrence == RecurNone || !through.After(template.Date) {
			continue
		}
		for day := range (Range{From: template.Date.Add(1), To: through}).Days() {
			if !template.Due(day) {
				continue
			}
			occ := template
			occ.ID = uuid.NewString()
			occ.Date = day
			occ.Recurrence = RecurNone
			if exists[key(occ)] {
				continue
			}
			exists[key(occ)] = true
			occurrences = append(occurrences, occ)
		}
	}
	b.Add(occurrences...)
	return len(occurrences)
}
