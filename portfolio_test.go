package pocketfolio

import (
	"math"
	"testing"
	"time"
)

func newTestPortfolio() *Portfolio {
	p := NewPortfolio("test")
	p.Add(
		Holding{
			ID: "h-aapl", Symbol: "AAPL", Name: "Apple", Type: AssetStock,
			Shares: Q(10), PurchasePrice: USD(150), CurrentPrice: USD(180),
			PurchaseDate: D(2024, time.March, 1), Risk: RiskMedium,
		},
		Holding{
			ID: "h-agg", Symbol: "AGG", Name: "Core Bond ETF", Type: AssetBond,
			Shares: Q(20), PurchasePrice: USD(100), CurrentPrice: USD(95),
			PurchaseDate: D(2024, time.March, 1), Risk: RiskLow,
		},
		Holding{
			ID: "h-btc", Symbol: "BTC", Name: "Bitcoin", Type: AssetCrypto,
			Shares: Q(0.05), PurchasePrice: USD(40000), CurrentPrice: USD(60000),
			PurchaseDate: D(2024, time.June, 10), Risk: RiskHigh,
		},
	)
	return p
}

func TestHolding_DerivedMetrics(t *testing.T) {
	h := Holding{Symbol: "AAPL", Shares: Q(10), PurchasePrice: USD(150), CurrentPrice: USD(180)}
	if got, want := h.CostBasis(), USD(1500); !got.Equal(want) {
		t.Errorf("CostBasis = %s, want %s", got, want)
	}
	if got, want := h.MarketValue(), USD(1800); !got.Equal(want) {
		t.Errorf("MarketValue = %s, want %s", got, want)
	}
	if got, want := h.GainLoss(), USD(300); !got.Equal(want) {
		t.Errorf("GainLoss = %s, want %s", got, want)
	}
	if got := h.GainLossPercent(); !got.Equal(20) {
		t.Errorf("GainLossPercent = %s, want 20%%", got)
	}
}

func TestHolding_GainLossPercent_ZeroBasis(t *testing.T) {
	h := Holding{Symbol: "X", Shares: Q(0), PurchasePrice: USD(0), CurrentPrice: USD(10)}
	if got := h.GainLossPercent(); !got.Equal(0) {
		t.Errorf("GainLossPercent with zero cost basis = %s, want 0%%", got)
	}
}

func TestNewHolding(t *testing.T) {
	h := NewHolding(" vti ", "Total Market", AssetETF, Q(5), USD(220), D(2025, time.January, 2), RiskMedium)
	if h.ID == "" {
		t.Error("NewHolding must assign an id")
	}
	if h.Symbol != "VTI" {
		t.Errorf("symbol = %q, want uppercased %q", h.Symbol, "VTI")
	}
	if !h.CurrentPrice.Equal(h.PurchasePrice) {
		t.Errorf("current price starts at purchase price, got %s", h.CurrentPrice)
	}
	if err := h.Validate(); err != nil {
		t.Errorf("fresh holding rejected: %v", err)
	}
}

func TestHolding_Validate(t *testing.T) {
	valid := NewHolding("VTI", "Total Market", AssetETF, Q(5), USD(220), D(2025, time.January, 2), RiskMedium)
	testCases := []struct {
		name   string
		mutate func(*Holding)
	}{
		{"empty symbol", func(h *Holding) { h.Symbol = "" }},
		{"zero shares", func(h *Holding) { h.Shares = Q(0) }},
		{"negative shares", func(h *Holding) { h.Shares = Q(-1) }},
		{"zero price", func(h *Holding) { h.PurchasePrice = USD(0) }},
		{"unknown type", func(h *Holding) { h.Type = "option" }},
		{"unknown risk", func(h *Holding) { h.Risk = "extreme" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := valid
			tc.mutate(&h)
			if err := h.Validate(); err == nil {
				t.Errorf("invalid holding accepted: %+v", h)
			}
		})
	}
}

func TestPortfolio_Totals(t *testing.T) {
	p := newTestPortfolio()
	// 10*180 + 20*95 + 0.05*60000 = 1800 + 1900 + 3000
	if got, want := p.TotalMarketValue(), USD(6700); !got.Equal(want) {
		t.Errorf("TotalMarketValue = %s, want %s", got, want)
	}
	// 10*150 + 20*100 + 0.05*40000 = 1500 + 2000 + 2000
	if got, want := p.TotalCostBasis(), USD(5500); !got.Equal(want) {
		t.Errorf("TotalCostBasis = %s, want %s", got, want)
	}
	if got, want := p.TotalGainLoss(), USD(1200); !got.Equal(want) {
		t.Errorf("TotalGainLoss = %s, want %s", got, want)
	}
}

func TestPortfolio_Allocation(t *testing.T) {
	p := newTestPortfolio()
	allocation := p.AllocationByType()
	var sum Percent
	for _, pct := range allocation {
		sum += pct
	}
	if !sum.Equal(100) {
		t.Errorf("allocation percentages sum to %s, want 100%%", sum)
	}
	// 3000 of 6700
	if got := allocation[AssetCrypto]; math.Abs(float64(got)-44.776) > 0.01 {
		t.Errorf("crypto allocation = %s, want ~44.78%%", got)
	}

	if got := NewPortfolio("empty").AllocationByType(); len(got) != 0 {
		t.Errorf("empty portfolio allocation = %v, want empty map", got)
	}
}

func TestPortfolio_AllocationDrift(t *testing.T) {
	p := newTestPortfolio()
	p.TargetAllocation = map[AssetType]Percent{
		AssetStock: 50,
		AssetETF:   10, // nothing held in ETFs
	}
	drift := p.AllocationDrift()
	if got := drift[AssetETF]; !got.Equal(-10) {
		t.Errorf("drift for unheld target type = %s, want -10%%", got)
	}
	if got := drift[AssetStock]; got >= 0 {
		t.Errorf("stock is under target, drift = %s, want negative", got)
	}
	// crypto has no target so its drift equals its actual allocation
	if got, actual := drift[AssetCrypto], p.AllocationByType()[AssetCrypto]; !got.Equal(actual) {
		t.Errorf("drift without target = %s, want actual %s", got, actual)
	}
}

func TestPortfolio_Performers(t *testing.T) {
	p := newTestPortfolio()
	top, ok := p.TopPerformer()
	if !ok || top.Symbol != "BTC" {
		t.Errorf("TopPerformer = %v, %v, want BTC", top.Symbol, ok)
	}
	worst, ok := p.WorstPerformer()
	if !ok || worst.Symbol != "AGG" {
		t.Errorf("WorstPerformer = %v, %v, want AGG", worst.Symbol, ok)
	}
	if _, ok := NewPortfolio("empty").TopPerformer(); ok {
		t.Error("TopPerformer on an empty portfolio must report not found")
	}
}

func TestPortfolio_RiskScore(t *testing.T) {
	p := newTestPortfolio()
	// (1800*2 + 1900*1 + 3000*3) / 6700 = 14500/6700
	want := 14500.0 / 6700.0
	if got := p.RiskScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("RiskScore = %f, want %f", got, want)
	}
	if got := NewPortfolio("empty").RiskScore(); got != 0 {
		t.Errorf("RiskScore of empty portfolio = %f, want 0", got)
	}
}

func TestPortfolio_RemoveRecomputes(t *testing.T) {
	p := newTestPortfolio()
	before := p.TotalMarketValue()
	if err := p.Remove("h-btc"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got, want := p.TotalMarketValue(), before.Sub(USD(3000)); !got.Equal(want) {
		t.Errorf("TotalMarketValue after Remove = %s, want %s", got, want)
	}
	if err := p.Remove("h-btc"); err == nil {
		t.Error("Remove with unknown id must fail")
	}
}

func TestPortfolio_Order(t *testing.T) {
	p := newTestPortfolio()
	var symbols []string
	for h := range p.AllHoldings() {
		symbols = append(symbols, h.Symbol)
	}
	want := []string{"AAPL", "AGG", "BTC"}
	for i, s := range want {
		if symbols[i] != s {
			t.Fatalf("holdings order = %v, want %v", symbols, want)
		}
	}
}
