// Package views applies user-chosen filter, search, sort and grouping
// parameters to the collections of the latest snapshot. Every function
// returns a fresh slice computed from its inputs; the snapshot is never
// mutated.
package views

import (
	"sort"
	"strings"

	"marketpulse/internal/domain/market"
)

// Asset sort keys. An unknown key falls back to SortBySymbol.
const (
	SortBySymbol        = "symbol"
	SortByName          = "name"
	SortByCurrentPrice  = "currentPrice"
	SortByChangePercent = "changePercent"
	SortByVolume        = "volume"
	SortByMarketCap     = "marketCap"
)

// SortState carries the active sort key and direction.
type SortState struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// Toggle returns the state after the user selects a key: selecting the
// active key flips the direction, selecting a new key resets to ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		return SortState{Key: key, Desc: !s.Desc}
	}
	return SortState{Key: key}
}

// AssetCounts are filter-badge totals, always taken from the unfiltered
// collection so the user sees totals alongside the active filter.
type AssetCounts struct {
	All    int `json:"all"`
	Stocks int `json:"stocks"`
	Crypto int `json:"crypto"`
}

// Assets runs the full pipeline: filter by class, search, then sort.
func Assets(assets []market.Asset, class, query string, state SortState) []market.Asset {
	return SortAssets(SearchAssets(FilterAssets(assets, class), query), state)
}

// FilterAssets keeps assets of the given class; "all" or empty keeps
// everything.
func FilterAssets(assets []market.Asset, class string) []market.Asset {
	if class == "" || class == "all" {
		return append([]market.Asset(nil), assets...)
	}
	out := make([]market.Asset, 0, len(assets))
	for _, a := range assets {
		if a.Class == market.Class(class) {
			out = append(out, a)
		}
	}
	return out
}

// SearchAssets keeps assets whose symbol or name contains the query,
// case-insensitively. An empty query keeps everything.
func SearchAssets(assets []market.Asset, query string) []market.Asset {
	if query == "" {
		return append([]market.Asset(nil), assets...)
	}
	q := strings.ToLower(query)
	out := make([]market.Asset, 0, len(assets))
	for _, a := range assets {
		if strings.Contains(strings.ToLower(a.Symbol), q) || strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

// SortAssets orders a copy of the assets by the state's key and direction.
// String fields compare case-insensitively, numeric fields numerically;
// ties break on ascending symbol so the order is deterministic.
func SortAssets(assets []market.Asset, state SortState) []market.Asset {
	out := append([]market.Asset(nil), assets...)
	less := assetLess(state.Key)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if state.Desc {
			a, b = b, a
		}
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		default:
			return strings.ToLower(out[i].Symbol) < strings.ToLower(out[j].Symbol)
		}
	})
	return out
}

func assetLess(key string) func(a, b market.Asset) bool {
	switch key {
	case SortByName:
		return func(a, b market.Asset) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByCurrentPrice:
		return func(a, b market.Asset) bool { return a.CurrentPrice < b.CurrentPrice }
	case SortByChangePercent:
		return func(a, b market.Asset) bool { return a.ChangePercent < b.ChangePercent }
	case SortByVolume:
		return func(a, b market.Asset) bool { return a.Volume < b.Volume }
	case SortByMarketCap:
		return func(a, b market.Asset) bool { return a.MarketCap < b.MarketCap }
	default:
		return func(a, b market.Asset) bool {
			return strings.ToLower(a.Symbol) < strings.ToLower(b.Symbol)
		}
	}
}

// CountAssets tallies the unfiltered collection per class.
func CountAssets(assets []market.Asset) AssetCounts {
	counts := AssetCounts{All: len(assets)}
	for _, a := range assets {
		switch a.Class {
		case market.ClassStock:
			counts.Stocks++
		case market.ClassCrypto:
			counts.Crypto++
		}
	}
	return counts
}
