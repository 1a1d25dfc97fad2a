package analytics

import (
	"math"
	"testing"
	"time"

	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/portfolio"
)

func pricePoints(base time.Time, prices ...float64) []market.PricePoint {
	points := make([]market.PricePoint, 0, len(prices))
	for i, p := range prices {
		points = append(points, market.PricePoint{Timestamp: base.Add(time.Duration(i) * time.Hour), Price: p})
	}
	return points
}

func TestBuildValueHistorySingleHolding(t *testing.T) {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	assets := []market.Asset{
		{Symbol: "BTC", PriceHistory: pricePoints(base, 100, 110)},
	}
	p := portfolio.Portfolio{Assets: []portfolio.Holding{{AssetID: "BTC", Quantity: 2}}}

	got := BuildValueHistory(p, assets)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Value != 200 || got[1].Value != 220 {
		t.Fatalf("unexpected values: %+v", got)
	}
	if !got[0].Timestamp.Equal(base) {
		t.Fatalf("expected reference timestamps, got %v", got[0].Timestamp)
	}
}

func TestBuildValueHistoryMixedLengths(t *testing.T) {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	assets := []market.Asset{
		{Symbol: "AAPL", PriceHistory: pricePoints(base, 10, 11, 12, 13, 14)},
		{Symbol: "ETH", PriceHistory: pricePoints(base, 100, 200, 300)},
	}
	p := portfolio.Portfolio{Assets: []portfolio.Holding{
		{AssetID: "AAPL", Quantity: 1},
		{AssetID: "ETH", Quantity: 2},
		{AssetID: "MISSING", Quantity: 99},
	}}

	got := BuildValueHistory(p, assets)
	// 以第一個有歷史資料的持倉（AAPL，5 點）為基準；ETH 前 3 點後不再貢獻，
	// 找不到的資產完全不貢獻。
	if len(got) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got))
	}
	want := []float64{210, 411, 612, 13, 14}
	for i, w := range want {
		if got[i].Value != w {
			t.Fatalf("point %d: expected %v, got %v", i, w, got[i].Value)
		}
	}
}

func TestBuildValueHistoryNoHistory(t *testing.T) {
	assets := []market.Asset{{Symbol: "AAPL"}}
	p := portfolio.Portfolio{Assets: []portfolio.Holding{{AssetID: "AAPL", Quantity: 1}}}
	if got := BuildValueHistory(p, assets); got != nil {
		t.Fatalf("expected nil history, got %+v", got)
	}
	if got := BuildValueHistory(portfolio.Portfolio{}, assets); got != nil {
		t.Fatalf("expected nil history for empty portfolio, got %+v", got)
	}
}

func TestBuildAllocationPercentages(t *testing.T) {
	p := portfolio.Portfolio{
		TotalValue: 3000,
		Assets: []portfolio.Holding{
			{AssetID: "AAPL", Value: 1000},
			{AssetID: "BTC", Value: 2000},
		},
	}

	got := BuildAllocation(p)
	if len(got) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(got))
	}
	if got[0].Percentage != 33.3 || got[1].Percentage != 66.7 {
		t.Fatalf("unexpected percentages: %+v", got)
	}

	var sum float64
	for _, a := range got {
		sum += a.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Fatalf("expected percentages to sum near 100, got %v", sum)
	}
}

func TestBuildAllocationZeroTotal(t *testing.T) {
	p := portfolio.Portfolio{
		TotalValue: 0,
		Assets:     []portfolio.Holding{{AssetID: "AAPL", Value: 0}},
	}
	got := BuildAllocation(p)
	if len(got) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(got))
	}
	if got[0].Percentage != 0 {
		t.Fatalf("expected 0 percentage on zero total, got %v", got[0].Percentage)
	}
}

func TestBuildAllocationEmpty(t *testing.T) {
	if got := BuildAllocation(portfolio.Portfolio{}); got != nil {
		t.Fatalf("expected nil for empty portfolio, got %+v", got)
	}
}
