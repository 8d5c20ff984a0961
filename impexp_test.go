package pocketfolio

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestExportExpensesCSV(t *testing.T) {
	book := NewExpenseBook()
	book.Add(
		Expense{ID: "a", Title: "groceries", Amount: USD(82.40), Category: CategoryFood, Date: D(2025, time.August, 2), Notes: "weekly"},
		Expense{ID: "b", Title: "gym", Amount: USD(35), Category: CategoryHealth, Date: D(2025, time.August, 1), Recurrence: RecurMonthly},
	)

	var out strings.Builder
	if err := ExportExpensesCSV(&out, book); err != nil {
		t.Fatalf("ExportExpensesCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("export has %d rows, want header + 2", len(records))
	}
	wantHeader := "id,date,title,category,amount,currency,recurrence,notes"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	// chronological order: gym (Aug 1) before groceries (Aug 2)
	if records[1][0] != "b" || records[2][0] != "a" {
		t.Errorf("rows not in chronological order: %v", records[1:])
	}
	if records[1][6] != "monthly" {
		t.Errorf("recurrence column = %q, want %q", records[1][6], "monthly")
	}
	if records[2][4] != "82.4" || records[2][5] != "USD" {
		t.Errorf("amount columns = %q %q, want 82.4 USD", records[2][4], records[2][5])
	}
}

func TestExportHoldingsCSV(t *testing.T) {
	p := newTestPortfolio()

	var out strings.Builder
	if err := ExportHoldingsCSV(&out, p); err != nil {
		t.Fatalf("ExportHoldingsCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != p.Len()+1 {
		t.Fatalf("export has %d rows, want header + %d", len(records), p.Len())
	}
	if records[0][0] != "symbol" || records[0][8] != "market_value" {
		t.Errorf("unexpected header: %v", records[0])
	}
	// AAPL: 10 shares, 150 -> 180
	aapl := records[1]
	if aapl[0] != "AAPL" {
		t.Fatalf("first row = %v, want AAPL (symbol order)", aapl)
	}
	if aapl[8] != "1800" || aapl[9] != "300" || aapl[10] != "20.00" {
		t.Errorf("derived columns = %q %q %q, want 1800 300 20.00", aapl[8], aapl[9], aapl[10])
	}
}

func TestExportSettingsJSON(t *testing.T) {
	got, err := ExportSettingsJSON(DefaultPreferences())
	if err != nil {
		t.Fatalf("ExportSettingsJSON failed: %v", err)
	}
	want := `{"currency":"USD","theme":"system","notifications":true,"budgetAlertThreshold":80,"priceRefreshSeconds":30,"newsRetentionDays":30}`
	if got != want {
		t.Errorf("ExportSettingsJSON =\n %s\nwant\n %s", got, want)
	}
}
