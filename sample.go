package pocketfolio

import "time"

// Bundled sample data, used whenever a document is missing or unreadable so
// the application always has something to show.

// SampleExpenses returns a small, recent-looking set of expenses.
func SampleExpenses() []Expense {
	today := Today()
	mk := func(daysAgo int, title string, amount float64, c ExpenseCategory, rec Recurrence) Expense {
		return Expense{
			ID:         "sample-" + slugify(title),
			Title:      title,
			Amount:     M(amount, "USD"),
			Category:   c,
			Date:       today.Add(-daysAgo),
			Recurrence: rec,
		}
	}
	return []Expense{
		mk(27, "Rent", 1450, CategoryHousing, RecurMonthly),
		mk(25, "Weekly groceries", 86.40, CategoryFood, RecurNone),
		mk(21, "Electricity bill", 64.20, CategoryUtilities, RecurNone),
		mk(18, "Streaming subscription", 15.99, CategoryEntertainment, RecurMonthly),
		mk(14, "Bus pass", 48, CategoryTransport, RecurNone),
		mk(11, "Pharmacy", 23.75, CategoryHealth, RecurNone),
		mk(8, "Dinner out", 54.30, CategoryFood, RecurNone),
		mk(5, "Online course", 39, CategoryEducation, RecurNone),
		mk(3, "New headphones", 129.99, CategoryShopping, RecurNone),
		mk(1, "Coffee", 4.80, CategoryFood, RecurNone),
	}
}

// SamplePortfolio returns a small diversified portfolio. Symbols match the
// ones the simulator demo data has always used.
func SamplePortfolio() *Portfolio {
	p := NewPortfolio("My Portfolio")
	today := Today()
	mk := func(symbol, name string, t AssetType, shares, purchase, current float64, monthsAgo int, risk RiskTier) Holding {
		h := NewHolding(symbol, name, t, Q(shares), M(purchase, "USD"), today.AddMonth(-monthsAgo), risk)
		h.ID = "sample-" + slugify(symbol)
		h.CurrentPrice = M(current, "USD")
		return h
	}
	p.Add(
		mk("AAPL", "Apple Inc.", AssetStock, 10, 150.00, 178.20, 18, RiskMedium),
		mk("MSFT", "Microsoft Corp.", AssetStock, 6, 380.00, 402.55, 10, RiskMedium),
		mk("VTI", "Vanguard Total Market ETF", AssetETF, 20, 210.00, 231.40, 24, RiskLow),
		mk("AGG", "Core US Aggregate Bond ETF", AssetBond, 30, 98.50, 99.10, 30, RiskLow),
		mk("BTC", "Bitcoin", AssetCrypto, 0.25, 42000, 58500, 14, RiskHigh),
		mk("GLD", "Gold Trust", AssetCommodity, 5, 180.00, 195.75, 8, RiskMedium),
	)
	p.TargetAllocation = map[AssetType]Percent{
		AssetStock:     35,
		AssetETF:       25,
		AssetBond:      20,
		AssetCrypto:    10,
		AssetCommodity: 10,
	}
	return p
}

// SampleFeed returns a feed regenerated from the bundled payload.
func SampleFeed(now time.Time) (*Feed, error) {
	feed := NewFeed()
	if err := feed.Refresh(now); err != nil {
		return nil, err
	}
	return feed, nil
}
