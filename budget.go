package pocketfolio

import (
	"fmt"
	"sort"
	"time"
)

// Budget is a spending limit for a (category, month, year) bucket. The spent
// amount is never stored: it is recomputed from the matching expenses, the
// expense book being the only source of truth.
type Budget struct {
	Category ExpenseCategory `json:"category"`
	Month    time.Month      `json:"month"`
	Year     int             `json:"year"`
	Amount   Money           `json:"amount"`
}

// Range returns the date range covered by the budget's month bucket.
func (b Budget) Range() Range {
	first := NewDate(b.Year, b.Month, 1)
	return Range{From: first, To: first.EndOf(Monthly)}
}

// BudgetStatus is the derived budget-versus-spend view of a single bucket.
type BudgetStatus struct {
	Budget    Budget
	Spent     Money
	Remaining Money // may be negative on over-spend
}

// Used returns the percentage of the budget consumed, clamped to [0, 100]
// for display. A zero budget yields zero.
func (s BudgetStatus) Used() Percent {
	return s.Spent.PercentOf(s.Budget.Amount).Clamp()
}

// Over reports whether spending exceeded the budgeted amount.
func (s BudgetStatus) Over() bool {
	return s.Budget.Amount.LessThan(s.Spent)
}

// BudgetBook holds all budget buckets.
type BudgetBook struct {
	budgets []Budget
}

// NewBudgetBook creates an empty budget book.
func NewBudgetBook() *BudgetBook {
	return &BudgetBook{budgets: make([]Budget, 0)}
}

// NewBudgetBookOf creates a book over the given budgets.
func NewBudgetBookOf(budgets []Budget) *BudgetBook {
	b := &BudgetBook{budgets: budgets}
	b.stableSort()
	return b
}

// Len returns the number of budget buckets.
func (b *BudgetBook) Len() int { return len(b.budgets) }

// Set upserts the budget for its (category, month, year) bucket.
func (b *BudgetBook) Set(budget Budget) error {
	if _, err := ParseExpenseCategory(string(budget.Category)); err != nil {
		return err
	}
	if budget.Amount.IsNegative() {
		return fmt.Errorf("budget amount must not be negative, got %s", budget.Amount)
	}
	for i, old := range b.budgets {
		if old.Category == budget.Category && old.Month == budget.Month && old.Year == budget.Year {
			b.budgets[i] = budget
			return nil
		}
	}
	b.budgets = append(b.budgets, budget)
	b.stableSort()
	return nil
}

// Get returns the budget for a bucket.
func (b *BudgetBook) Get(c ExpenseCategory, year int, month time.Month) (Budget, bool) {
	for _, budget := range b.budgets {
		if budget.Category == c && budget.Year == year && budget.Month == month {
			return budget, true
		}
	}
	return Budget{}, false
}

// Remove deletes the budget for a bucket by rewriting the collection.
func (b *BudgetBook) Remove(c ExpenseCategory, year int, month time.Month) error {
	kept := make([]Budget, 0, len(b.budgets))
	found := false
	for _, budget := range b.budgets {
		if budget.Category == c && budget.Year == year && budget.Month == month {
			found = true
			continue
		}
		kept = append(kept, budget)
	}
	if !found {
		return fmt.Errorf("no %s budget for %s %d", c, month, year)
	}
	b.budgets = kept
	return nil
}

// All returns a copy of all budgets.
func (b *BudgetBook) All() []Budget {
	out := make([]Budget, len(b.budgets))
	copy(out, b.budgets)
	return out
}

// ForMonth returns the budgets of a month, sorted by category.
func (b *BudgetBook) ForMonth(year int, month time.Month) []Budget {
	var out []Budget
	for _, budget := range b.budgets {
		if budget.Year == year && budget.Month == month {
			out = append(out, budget)
		}
	}
	return out
}

func (b *BudgetBook) stableSort() {
	sort.SliceStable(b.budgets, func(i, j int) bool {
		x, y := b.budgets[i], b.budgets[j]
		if x.Year != y.Year {
			return x.Year < y.Year
		}
		if x.Month != y.Month {
			return x.Month < y.Month
		}
		return x.Category < y.Category
	})
}

// MonthReport is the derived budget rollup for one month.
type MonthReport struct {
	Year          int
	Month         time.Month
	Statuses      []BudgetStatus
	TotalBudgeted Money
	TotalSpent    Money
	Unbudgeted    Money // spend in categories with no bucket this month
}

// OverBudget returns the categories whose spending exceeded their budget.
func (r MonthReport) OverBudget() []ExpenseCategory {
	var out []ExpenseCategory
	for _, s := range r.Statuses {
		if s.Over() {
			out = append(out, s.Budget.Category)
		}
	}
	return out
}

// Report computes the budget-versus-spend rollup for a month by summing the
// matching expenses.
func (b *BudgetBook) Report(expenses *ExpenseBook, year int, month time.Month) MonthReport {
	report := MonthReport{Year: year, Month: month}
	monthRange := NewDate(year, month, 1).StartOf(Monthly)
	window := Range{From: monthRange, To: monthRange.EndOf(Monthly)}
	totals := expenses.TotalsByCategory(window)

	budgeted := make(map[ExpenseCategory]bool)
	for _, budget := range b.ForMonth(year, month) {
		spent := totals[budget.Category]
		report.Statuses = append(report.Statuses, BudgetStatus{
			Budget:    budget,
			Spent:     spent,
			Remaining: budget.Amount.Sub(spent),
		})
		report.TotalBudgeted = report.TotalBudgeted.Add(budget.Amount)
		report.TotalSpent = report.TotalSpent.Add(spent)
		budgeted[budget.Category] = true
	}
	for category, total := range totals {
		if !budgeted[category] {
			report.Unbudgeted = report.Unbudgeted.Add(total)
		}
	}
	return report
}
