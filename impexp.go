package pocketfolio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// This file contains the user-facing backup formats. They are meant to be
// opened in a spreadsheet or read by eye, not to round-trip through the
// store.

// ExportExpensesCSV writes the expense book to w as CSV, one record per
// expense, header first, in chronological order.
func ExportExpensesCSV(w io.Writer, book *ExpenseBook) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "title", "category", "amount", "currency", "recurrence", "notes"}); err != nil {
		return fmt.Errorf("could not write expense CSV header: %w", err)
	}
	for _, e := range book.All() {
		record := []string{
			e.ID,
			e.Date.String(),
			e.Title,
			string(e.Category),
			e.Amount.Amount().String(),
			e.Amount.Currency(),
			string(e.Recurrence),
			e.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write expense %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportHoldingsCSV writes the portfolio's holdings to w as CSV, with the
// derived value and gain columns included, in symbol order.
func ExportHoldingsCSV(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	header := []string{"symbol", "name", "type", "shares", "purchase_price", "current_price", "purchase_date", "risk", "market_value", "gain_loss", "gain_loss_pct"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write holdings CSV header: %w", err)
	}
	for h := range p.AllHoldings() {
		record := []string{
			h.Symbol,
			h.Name,
			string(h.Type),
			h.Shares.String(),
			h.PurchasePrice.Amount().String(),
			h.CurrentPrice.Amount().String(),
			h.PurchaseDate.String(),
			string(h.Risk),
			h.MarketValue().Amount().String(),
			h.GainLoss().Amount().String(),
			fmt.Sprintf("%.2f", float64(h.GainLossPercent())),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write holding %s: %w", h.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSettingsJSON renders the preferences as a JSON string with a fixed
// field order, built by hand rather than through the structured encoder, for
// the user-facing backup.
func ExportSettingsJSON(p Preferences) (string, error) {
	var w jsonObjectWriter
	w.Append("currency", p.Currency).
		Append("theme", p.Theme).
		Append("notifications", p.Notifications).
		Append("budgetAlertThreshold", p.BudgetAlertThreshold).
		Append("priceRefreshSeconds", p.PriceRefreshSeconds).
		Append("newsRetentionDays", p.NewsRetentionDays)
	out, err := w.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("could not export settings: %w", err)
	}
	return string(out), nil
}
