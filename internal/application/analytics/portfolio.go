// Package analytics derives portfolio-level figures from the latest
// snapshot. Everything here is a pure function of its inputs; nothing is
// cached or mutated.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/portfolio"
)

// ValuePoint is one point of the reconstructed portfolio value series.
type ValuePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Allocation is one holding's share of the total portfolio value.
type Allocation struct {
	HoldingID  string  `json:"holdingId"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// BuildValueHistory reconstructs the portfolio value over time by aligning
// each holding's price history against a reference timeline. The reference
// is the first holding (in portfolio order) whose matched asset carries a
// non-empty history; if no held asset has history the result is empty.
//
// Histories are aligned by index, not by timestamp: the feed samples every
// asset on the same cadence, so index i means the same instant across
// assets. A holding whose history is shorter than the reference (or whose
// asset is missing entirely) contributes 0 past its range instead of
// aborting the computation.
func BuildValueHistory(p portfolio.Portfolio, assets []market.Asset) []ValuePoint {
	index := market.BySymbol(assets)

	var reference []market.PricePoint
	for _, h := range p.Assets {
		if a, ok := index[h.AssetID]; ok && len(a.PriceHistory) > 0 {
			reference = a.PriceHistory
			break
		}
	}
	if len(reference) == 0 {
		return nil
	}

	points := make([]ValuePoint, 0, len(reference))
	for i, ref := range reference {
		var value float64
		for _, h := range p.Assets {
			a, ok := index[h.AssetID]
			if !ok || i >= len(a.PriceHistory) {
				continue
			}
			value += a.PriceHistory[i].Price * h.Quantity
		}
		points = append(points, ValuePoint{Timestamp: ref.Timestamp, Value: value})
	}
	return points
}

// BuildAllocation computes each holding's percentage of the total portfolio
// value, rounded to one decimal for display. When the total value is zero
// every percentage is 0 rather than a division error.
func BuildAllocation(p portfolio.Portfolio) []Allocation {
	if len(p.Assets) == 0 {
		return nil
	}

	total := decimal.NewFromFloat(p.TotalValue)
	hundred := decimal.NewFromInt(100)

	out := make([]Allocation, 0, len(p.Assets))
	for _, h := range p.Assets {
		alloc := Allocation{HoldingID: h.AssetID, Value: h.Value}
		if total.IsPositive() {
			pct := decimal.NewFromFloat(h.Value).Div(total).Mul(hundred).Round(1)
			alloc.Percentage = pct.InexactFloat64()
		}
		out = append(out, alloc)
	}
	return out
}
