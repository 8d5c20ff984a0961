package pocketfolio

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AssetType classifies an investment holding.
type AssetType string

const (
	AssetStock      AssetType = "stock"
	AssetBond       AssetType = "bond"
	AssetETF        AssetType = "etf"
	AssetCrypto     AssetType = "crypto"
	AssetMutualFund AssetType = "mutual-fund"
	AssetRealEstate AssetType = "real-estate"
	AssetCommodity  AssetType = "commodity"
	AssetCash       AssetType = "cash"
)

// AssetTypes returns all asset types in display order.
func AssetTypes() []AssetType {
	return []AssetType{
		AssetStock, AssetBond, AssetETF, AssetCrypto,
		AssetMutualFund, AssetRealEstate, AssetCommodity, AssetCash,
	}
}

// ParseAssetType parses an asset type name.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AssetTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type: %q", s)
}

// RiskTier grades a holding's risk.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ParseRiskTier parses a risk tier name.
func ParseRiskTier(s string) (RiskTier, error) {
	switch t := RiskTier(strings.ToLower(strings.TrimSpace(s))); t {
	case RiskLow, RiskMedium, RiskHigh:
		return t, nil
	default:
		return "", fmt.Errorf("unknown risk tier: %q", s)
	}
}

// weight is the numeric risk weight used by the portfolio risk score.
func (t RiskTier) weight() float64 {
	switch t {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// Holding is a single investment position. Value, gain and percentages are
// pure functions of the stored fields and are recomputed on read, never
// stored.
type Holding struct {
	ID            string    `json:"id"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Type          AssetType `json:"type"`
	Shares        Quantity  `json:"shares"`
	PurchasePrice Money     `json:"purchasePrice"`
	CurrentPrice  Money     `json:"currentPrice"`
	PurchaseDate  Date      `json:"purchaseDate"`
	Risk          RiskTier  `json:"risk"`
	Notes         string    `json:"notes,omitempty"`
}

// NewHolding creates a holding with a fresh id. The current price starts at
// the purchase price until the simulator or a manual quote moves it.
func NewHolding(symbol, name string, t AssetType, shares Quantity, purchasePrice Money, on Date, risk RiskTier) Holding {
	return Holding{
		ID:            uuid.NewString(),
		Symbol:        strings.ToUpper(strings.TrimSpace(symbol)),
		Name:          name,
		Type:          t,
		Shares:        shares,
		PurchasePrice: purchasePrice,
		CurrentPrice:  purchasePrice,
		PurchaseDate:  on,
		Risk:          risk,
	}
}

// Validate checks the holding for correctness.
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("holding symbol must not be empty")
	}
	if h.Shares.IsZero() || h.Shares.IsNegative() {
		return fmt.Errorf("holding %s: share count must be positive, got %s", h.Symbol, h.Shares)
	}
	if !h.PurchasePrice.IsPositive() {
		return fmt.Errorf("holding %s: purchase price must be positive, got %s", h.Symbol, h.PurchasePrice)
	}
	if _, err := ParseAssetType(string(h.Type)); err != nil {
		return fmt.Errorf("holding %s: %w", h.Symbol, err)
	}
	if _, err := ParseRiskTier(string(h.Risk)); err != nil {
		return fmt.Errorf("holding %s: %w", h.Symbol, err)
	}
	return nil
}

// CostBasis returns shares times purchase price.
func (h Holding) CostBasis() Money { return h.PurchasePrice.Mul(h.Shares) }

// MarketValue returns shares times current price.
func (h Holding) MarketValue() Money { return h.CurrentPrice.Mul(h.Shares) }

// GainLoss returns the unrealized gain (or loss) on the position.
func (h Holding) GainLoss() Money { return h.MarketValue().Sub(h.CostBasis()) }

// GainLossPercent returns the gain as a percentage of the cost basis.
// A zero cost basis yields zero.
func (h Holding) GainLossPercent() Percent {
	return h.GainLoss().PercentOf(h.CostBasis())
}
