package pocketfolio

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// volatility is the maximum percent move per tick for each asset type.
func volatility(t AssetType) float64 {
	switch t {
	case AssetCrypto:
		return 8
	case AssetStock, AssetETF:
		return 2
	case AssetBond:
		return 0.5
	case AssetCash:
		return 0
	default:
		return 1
	}
}

// minPrice is the floor a simulated price never goes below.
var minPrice = 0.01

// Simulator applies a bounded random walk to the current price of every
// holding in a portfolio. There is no real market-data integration: this is
// the only thing that moves prices besides a manual quote.
type Simulator struct {
	portfolio *Portfolio
	rng       *rand.Rand
	log       zerolog.Logger
}

// NewSimulator creates a simulator over the portfolio, seeded from the clock.
func NewSimulator(p *Portfolio, log zerolog.Logger) *Simulator {
	return &Simulator{
		portfolio: p,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log,
	}
}

// Seed re-seeds the random source, for reproducible runs.
func (s *Simulator) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Step applies one price tick to every holding. Each current price moves by
// a uniform random percentage within the asset type's volatility, and never
// below the price floor.
func (s *Simulator) Step() {
	for i, h := range s.portfolio.Holdings {
		vol := volatility(h.Type)
		if vol == 0 {
			continue
		}
		changePercent := (s.rng.Float64()*2 - 1) * vol
		price := h.CurrentPrice.AsFloat() * (1 + changePercent/100)
		if price < minPrice {
			price = minPrice
		}
		s.portfolio.Holdings[i].CurrentPrice = M(price, h.CurrentPrice.Currency())
		s.log.Debug().
			Str("symbol", h.Symbol).
			Float64("price", price).
			Float64("change_pct", changePercent).
			Msg("price tick")
	}
}

// Run ticks prices on the given interval until the context is cancelled,
// invoking save after each tick. A save failure is logged and the loop keeps
// going; price movement is fire-and-forget.
func (s *Simulator) Run(ctx context.Context, interval time.Duration, save func() error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
			if save == nil {
				continue
			}
			if err := save(); err != nil {
				s.log.Warn().Err(err).Msg("could not save portfolio after price tick")
			}
		}
	}
}
