package pocketfolio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_StepBounds(t *testing.T) {
	p := newTestPortfolio()
	sim := NewSimulator(p, zerolog.Nop())
	sim.Seed(42)

	for tick := 0; tick < 200; tick++ {
		before := make(map[string]float64)
		for _, h := range p.Holdings {
			before[h.ID] = h.CurrentPrice.AsFloat()
		}
		sim.Step()
		for _, h := range p.Holdings {
			change := math.Abs(h.CurrentPrice.AsFloat()-before[h.ID]) / before[h.ID] * 100
			assert.LessOrEqualf(t, change, volatility(h.Type)+1e-9,
				"%s moved %.4f%% on tick %d, volatility is %.1f%%", h.Symbol, change, tick, volatility(h.Type))
		}
	}
}

func TestSimulator_PriceFloor(t *testing.T) {
	p := NewPortfolio("floor")
	p.Add(Holding{
		ID: "h-penny", Symbol: "PNY", Type: AssetCrypto,
		Shares: Q(1), PurchasePrice: USD(0.02), CurrentPrice: USD(0.02), Risk: RiskHigh,
	})
	sim := NewSimulator(p, zerolog.Nop())
	sim.Seed(7)

	for tick := 0; tick < 500; tick++ {
		sim.Step()
		h, _ := p.Holding("h-penny")
		require.GreaterOrEqual(t, h.CurrentPrice.AsFloat(), minPrice, "price fell through the floor on tick %d", tick)
	}
}

func TestSimulator_CashNeverMoves(t *testing.T) {
	p := NewPortfolio("cash")
	p.Add(Holding{
		ID: "h-cash", Symbol: "CASH", Type: AssetCash,
		Shares: Q(1), PurchasePrice: USD(1000), CurrentPrice: USD(1000), Risk: RiskLow,
	})
	sim := NewSimulator(p, zerolog.Nop())
	sim.Seed(1)

	for tick := 0; tick < 50; tick++ {
		sim.Step()
	}
	h, _ := p.Holding("h-cash")
	assert.True(t, h.CurrentPrice.Equal(USD(1000)), "cash position moved to %s", h.CurrentPrice)
}

func TestSimulator_Seed(t *testing.T) {
	walk := func(seed int64) []float64 {
		p := newTestPortfolio()
		sim := NewSimulator(p, zerolog.Nop())
		sim.Seed(seed)
		var prices []float64
		for tick := 0; tick < 10; tick++ {
			sim.Step()
			for _, h := range p.Holdings {
				prices = append(prices, h.CurrentPrice.AsFloat())
			}
		}
		return prices
	}
	assert.Equal(t, walk(99), walk(99), "identical seeds must produce identical walks")
}

func TestSimulator_Run(t *testing.T) {
	p := newTestPortfolio()
	sim := NewSimulator(p, zerolog.Nop())
	sim.Seed(5)

	ctx, cancel := context.WithCancel(context.Background())
	saves := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		sim.Run(ctx, time.Millisecond, func() error {
			saves++
			if saves >= 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
	require.GreaterOrEqual(t, saves, 3, "save callback not invoked on ticks")
}
