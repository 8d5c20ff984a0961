package pocketfolio

import (
	"fmt"
	"iter"
	"sort"
)

// Portfolio is a named collection of holdings plus a target-allocation map.
// Every aggregate metric is derived and recomputed on read.
type Portfolio struct {
	Name             string                `json:"name"`
	Holdings         []Holding             `json:"holdings"`
	TargetAllocation map[AssetType]Percent `json:"targetAllocation,omitempty"`
}

// NewPortfolio creates an empty named portfolio.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{
		Name:             name,
		Holdings:         make([]Holding, 0),
		TargetAllocation: make(map[AssetType]Percent),
	}
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.Holdings) }

// Add appends holdings and keeps the collection sorted by symbol.
func (p *Portfolio) Add(holdings ...Holding) {
	p.Holdings = append(p.Holdings, holdings...)
	p.stableSort()
}

// Holding returns the holding with the given id.
func (p *Portfolio) Holding(id string) (Holding, bool) {
	for _, h := range p.Holdings {
		if h.ID == id {
			return h, true
		}
	}
	return Holding{}, false
}

// BySymbol returns the first holding with the given symbol.
func (p *Portfolio) BySymbol(symbol string) (Holding, bool) {
	for _, h := range p.Holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}

// Replace substitutes the stored holding having the same id.
func (p *Portfolio) Replace(h Holding) error {
	for i, old := range p.Holdings {
		if old.ID == h.ID {
			p.Holdings[i] = h
			p.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no holding with id %q", h.ID)
}

// Remove deletes the holding with the given id by rewriting the collection.
// All aggregate metrics reflect the removal on the next read.
func (p *Portfolio) Remove(id string) error {
	kept := make([]Holding, 0, len(p.Holdings))
	found := false
	for _, h := range p.Holdings {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return fmt.Errorf("no holding with id %q", id)
	}
	p.Holdings = kept
	return nil
}

func (p *Portfolio) stableSort() {
	sort.SliceStable(p.Holdings, func(i, j int) bool {
		if p.Holdings[i].Symbol != p.Holdings[j].Symbol {
			return p.Holdings[i].Symbol < p.Holdings[j].Symbol
		}
		return p.Holdings[i].ID < p.Holdings[j].ID
	})
}

// AllHoldings iterates over holdings in symbol order.
func (p *Portfolio) AllHoldings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range p.Holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// TotalMarketValue sums the market value of all holdings.
func (p *Portfolio) TotalMarketValue() Money {
	var total Money
	for _, h := range p.Holdings {
		total = total.Add(h.MarketValue())
	}
	return total
}

// TotalCostBasis sums the cost basis of all holdings.
func (p *Portfolio) TotalCostBasis() Money {
	var total Money
	for _, h := range p.Holdings {
		total = total.Add(h.CostBasis())
	}
	return total
}

// TotalGainLoss returns the unrealized gain over the whole portfolio.
func (p *Portfolio) TotalGainLoss() Money {
	return p.TotalMarketValue().Sub(p.TotalCostBasis())
}

// TotalGainLossPercent returns the portfolio gain as a percentage of the
// total cost basis, zero when the portfolio is empty.
func (p *Portfolio) TotalGainLossPercent() Percent {
	return p.TotalGainLoss().PercentOf(p.TotalCostBasis())
}

// AllocationByType returns the share of total market value held in each
// asset type. An empty portfolio yields an empty map.
func (p *Portfolio) AllocationByType() map[AssetType]Percent {
	allocation := make(map[AssetType]Percent)
	total := p.TotalMarketValue()
	if total.IsZero() {
		return allocation
	}
	values := make(map[AssetType]Money)
	for _, h := range p.Holdings {
		values[h.Type] = values[h.Type].Add(h.MarketValue())
	}
	for t, v := range values {
		allocation[t] = v.PercentOf(total)
	}
	return allocation
}

// AllocationDrift returns, per asset type, the difference between the actual
// allocation and the target. Positive drift means over-weighted. Types absent
// from both sides are absent from the result.
func (p *Portfolio) AllocationDrift() map[AssetType]Percent {
	drift := make(map[AssetType]Percent)
	actual := p.AllocationByType()
	for t, pct := range actual {
		drift[t] = pct - p.TargetAllocation[t]
	}
	for t, pct := range p.TargetAllocation {
		if _, ok := actual[t]; !ok {
			drift[t] = -pct
		}
	}
	return drift
}

// TopPerformer returns the holding with the highest gain percentage.
func (p *Portfolio) TopPerformer() (Holding, bool) {
	return p.pickPerformer(func(best, candidate Percent) bool { return candidate > best })
}

// WorstPerformer returns the holding with the lowest gain percentage.
func (p *Portfolio) WorstPerformer() (Holding, bool) {
	return p.pickPerformer(func(best, candidate Percent) bool { return candidate < best })
}

func (p *Portfolio) pickPerformer(better func(best, candidate Percent) bool) (Holding, bool) {
	var pick Holding
	found := false
	for _, h := range p.Holdings {
		if !found || better(pick.GainLossPercent(), h.GainLossPercent()) {
			pick = h
			found = true
		}
	}
	return pick, found
}

// RiskScore returns the market-value-weighted risk score of the portfolio,
// between 1 (all low risk) and 3 (all high risk). An empty or worthless
// portfolio yields 0.
func (p *Portfolio) RiskScore() float64 {
	total := p.TotalMarketValue()
	if total.IsZero() {
		return 0
	}
	var score float64
	for _, h := range p.Holdings {
		weight := h.MarketValue().AsFloat() / total.AsFloat()
		score += weight * h.Risk.weight()
	}
	return score
}
