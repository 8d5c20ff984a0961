package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/ocarel/pocketfolio"
)

// PortfolioMarkdown renders the full portfolio report: totals, holdings,
// allocation versus target, and the performer callouts.
func PortfolioMarkdown(p *pocketfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio %q", p.Name))
	doc.PlainText(fmt.Sprintf("Total Value: %s | Gain: %s (%s) | Risk: %s",
		p.TotalMarketValue(), p.TotalGainLoss().SignedString(),
		p.TotalGainLossPercent().SignedString(), score(p.RiskScore())))

	doc.H2("Holdings")
	holdings := md.TableSet{
		Header: []string{"Symbol", "Name", "Type", "Shares", "Price", "Value", "Gain", "Gain %"},
	}
	for h := range p.AllHoldings() {
		holdings.Rows = append(holdings.Rows, []string{
			h.Symbol, h.Name, string(h.Type), h.Shares.String(),
			h.CurrentPrice.String(), h.MarketValue().String(),
			h.GainLoss().SignedString(), h.GainLossPercent().SignedString(),
		})
	}
	doc.Table(holdings)

	doc.H2("Allocation")
	allocation := md.TableSet{Header: []string{"Type", "Actual", "Target", "Drift"}}
	actual := p.AllocationByType()
	drift := p.AllocationDrift()
	types := make([]pocketfolio.AssetType, 0, len(drift))
	for t := range drift {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		allocation.Rows = append(allocation.Rows, []string{
			string(t), actual[t].String(),
			p.TargetAllocation[t].String(), drift[t].SignedString(),
		})
	}
	doc.Table(allocation)

	if top, ok := p.TopPerformer(); ok {
		doc.H2("Performers")
		worst, _ := p.WorstPerformer()
		doc.PlainText(fmt.Sprintf("Best: %s %s | Worst: %s %s",
			top.Symbol, top.GainLossPercent().SignedString(),
			worst.Symbol, worst.GainLossPercent().SignedString()))
	}

	return doc.String()
}
