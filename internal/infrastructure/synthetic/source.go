// Package synthetic 提供確定性的展示用資料來源：未設定後端 base_url
// 或開啟 use_synthetic 時，六個資料來源全部由本機產生。
package synthetic

import (
	"context"
	"math"
	"sort"
	"time"

	"marketpulse/internal/application/syncstore"
	"marketpulse/internal/domain/alert"
	"marketpulse/internal/domain/dashboard"
	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/news"
	"marketpulse/internal/domain/portfolio"
)

const historyPoints = 30

// Source 實作 syncstore.FeedSource，所有資料由 now 函式推導，
// 固定 now 即可得到完全可重現的輸出。
type Source struct {
	now func() time.Time
}

// NewSource 建立合成資料來源。
func NewSource() *Source {
	return &Source{now: time.Now}
}

var _ syncstore.FeedSource = (*Source)(nil)

type assetSeed struct {
	symbol    string
	name      string
	class     market.Class
	basePrice float64
	volume    int64
	marketCap float64
	sector    string
	metrics   *market.KeyMetrics
}

var assetSeeds = []assetSeed{
	{"AAPL", "Apple Inc.", market.ClassStock, 192.4, 58_000_000, 2.95e12, "Technology", &market.KeyMetrics{PERatio: 29.8, EPS: 6.46, DividendYield: 0.5, Beta: 1.29}},
	{"MSFT", "Microsoft Corporation", market.ClassStock, 424.3, 21_000_000, 3.15e12, "Technology", &market.KeyMetrics{PERatio: 36.1, EPS: 11.76, DividendYield: 0.7, Beta: 0.89}},
	{"NVDA", "NVIDIA Corporation", market.ClassStock, 118.5, 310_000_000, 2.9e12, "Technology", &market.KeyMetrics{PERatio: 72.4, EPS: 1.64, DividendYield: 0.03, Beta: 1.68}},
	{"TSLA", "Tesla, Inc.", market.ClassStock, 248.9, 95_000_000, 7.9e11, "Consumer Cyclical", &market.KeyMetrics{PERatio: 62.3, EPS: 3.99, DividendYield: 0, Beta: 2.29}},
	{"BTC", "Bitcoin", market.ClassCrypto, 67_250, 32_000_000_000, 1.32e12, "", nil},
	{"ETH", "Ethereum", market.ClassCrypto, 3_480, 17_000_000_000, 4.2e11, "", nil},
	{"SOL", "Solana", market.ClassCrypto, 152.7, 3_100_000_000, 7.1e10, "", nil},
}

// 每個 symbol 固定的相位差，讓各資產的走勢不同但可重現。
func phase(symbol string) float64 {
	var sum float64
	for _, r := range symbol {
		sum += float64(r)
	}
	return sum / 17
}

func (s *Source) buildAsset(seed assetSeed) market.Asset {
	anchor := s.now().Truncate(time.Hour)
	start := anchor.Add(-time.Duration(historyPoints-1) * time.Hour)

	history := make([]market.PricePoint, 0, historyPoints)
	p := phase(seed.symbol)
	for i := 0; i < historyPoints; i++ {
		wave := 1 + 0.03*math.Sin(p+float64(i)/4)
		history = append(history, market.PricePoint{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Price:     round2(seed.basePrice * wave),
		})
	}

	current := history[len(history)-1].Price
	prev := history[len(history)-2].Price
	changePercent := 0.0
	if prev > 0 {
		changePercent = round2((current - prev) / prev * 100)
	}

	return market.Asset{
		Symbol:        seed.symbol,
		Name:          seed.name,
		Class:         seed.class,
		CurrentPrice:  current,
		ChangePercent: changePercent,
		Volume:        seed.volume,
		MarketCap:     seed.marketCap,
		Sector:        seed.sector,
		KeyMetrics:    seed.metrics,
		PriceHistory:  history,
	}
}

func (s *Source) assets(class market.Class) []market.Asset {
	var out []market.Asset
	for _, seed := range assetSeeds {
		if seed.class == class {
			out = append(out, s.buildAsset(seed))
		}
	}
	return out
}

func (s *Source) FetchStocks(ctx context.Context) ([]market.Asset, error) {
	return s.assets(market.ClassStock), nil
}

func (s *Source) FetchCrypto(ctx context.Context) ([]market.Asset, error) {
	return s.assets(market.ClassCrypto), nil
}

func (s *Source) FetchPortfolio(ctx context.Context) (portfolio.Portfolio, error) {
	index := market.BySymbol(append(s.assets(market.ClassStock), s.assets(market.ClassCrypto)...))

	positions := []struct {
		symbol   string
		quantity float64
		avgBuy   float64
	}{
		{"AAPL", 12, 168.2},
		{"NVDA", 25, 92.6},
		{"BTC", 0.4, 52_300},
		{"ETH", 3.5, 2_950},
	}

	p := portfolio.Portfolio{Watchlist: []string{"MSFT", "SOL", "AMZN"}}
	for _, pos := range positions {
		a := index[pos.symbol]
		value := round2(a.CurrentPrice * pos.quantity)
		cost := pos.avgBuy * pos.quantity
		change := round2(value - cost)
		changePercent := 0.0
		if cost > 0 {
			changePercent = round2(change / cost * 100)
		}
		p.Assets = append(p.Assets, portfolio.Holding{
			AssetID:       pos.symbol,
			Quantity:      pos.quantity,
			AvgBuyPrice:   pos.avgBuy,
			CurrentPrice:  a.CurrentPrice,
			Value:         value,
			Change:        change,
			ChangePercent: changePercent,
		})
		p.TotalValue = round2(p.TotalValue + value)
		p.TotalChange = round2(p.TotalChange + change)
	}
	totalCost := p.TotalValue - p.TotalChange
	if totalCost > 0 {
		p.TotalChangePercent = round2(p.TotalChange / totalCost * 100)
	}
	return p, nil
}

func (s *Source) FetchNews(ctx context.Context) ([]news.Article, error) {
	anchor := s.now().Truncate(time.Hour)
	seeds := []struct {
		id        string
		title     string
		source    string
		category  string
		impact    alert.Severity
		sentiment float64
		ageHours  int
		summary   string
		affected  []string
	}{
		{"news-1", "Apple beats earnings expectations on services growth", "MarketWatch", "earnings", alert.SeverityHigh, 0.82, 1, "Q3 revenue tops estimates as services hit a record.", []string{"AAPL"}},
		{"news-2", "Bitcoin hovers near range highs as ETF inflows resume", "CoinDesk", "crypto", alert.SeverityMedium, 0.71, 3, "Spot ETF products posted a third straight day of inflows.", []string{"BTC"}},
		{"news-3", "Regulators open review of AI chip export rules", "Reuters", "regulatory", alert.SeverityCritical, 0.31, 5, "Proposed restrictions could affect data-center demand.", []string{"NVDA"}},
		{"news-4", "Fed officials split on timing of next rate move", "Bloomberg", "macro", alert.SeverityHigh, 0.48, 8, "Minutes show a divided committee heading into September.", nil},
		{"news-5", "Ethereum staking yields drift lower as validator queue clears", "The Block", "crypto", alert.SeverityLow, 0.55, 12, "", []string{"ETH"}},
		{"news-6", "Chipmakers rally on stronger data-center guidance", "CNBC", "technology", alert.SeverityMedium, 0.77, 16, "Guidance raises across the sector lift sentiment.", []string{"NVDA", "AAPL"}},
	}

	out := make([]news.Article, 0, len(seeds))
	for _, sd := range seeds {
		out = append(out, news.Article{
			ID:             sd.id,
			Title:          sd.title,
			Source:         sd.source,
			Category:       sd.category,
			Impact:         sd.impact,
			Sentiment:      sd.sentiment,
			Timestamp:      anchor.Add(-time.Duration(sd.ageHours) * time.Hour),
			Summary:        sd.summary,
			AffectedAssets: sd.affected,
		})
	}
	return out, nil
}

func (s *Source) FetchAlerts(ctx context.Context) ([]alert.Alert, error) {
	anchor := s.now().Truncate(time.Hour)
	seeds := []struct {
		id       string
		typ      alert.Type
		severity alert.Severity
		title    string
		message  string
		ageHours int
		action   bool
		affected []string
		accuracy float64
	}{
		{"alert-1", alert.TypePriceMovement, alert.SeverityCritical, "BTC breakout", "BTC moved more than 5% in the last hour.", 1, true, []string{"BTC"}, 0.93},
		{"alert-2", alert.TypeVolumeSpike, alert.SeverityHigh, "NVDA volume spike", "NVDA volume is 3.2x its 20-day average.", 2, false, []string{"NVDA"}, 0.87},
		{"alert-3", alert.TypePortfolioRisk, alert.SeverityMedium, "Concentration risk", "Crypto holdings exceed 40% of portfolio value.", 6, true, []string{"BTC", "ETH"}, 0.74},
		{"alert-4", alert.TypeNewsImpact, alert.SeverityHigh, "Regulatory headline", "High-impact regulatory news affects a held asset.", 7, false, []string{"NVDA"}, 0.81},
		{"alert-5", alert.TypeSystem, alert.SeverityLow, "", "Price feed latency back to normal.", 20, false, nil, 0},
	}

	out := make([]alert.Alert, 0, len(seeds))
	for _, sd := range seeds {
		out = append(out, alert.Alert{
			ID:             sd.id,
			Type:           sd.typ,
			Severity:       sd.severity,
			Title:          sd.title,
			Message:        sd.message,
			Timestamp:      anchor.Add(-time.Duration(sd.ageHours) * time.Hour),
			ActionRequired: sd.action,
			AffectedAssets: sd.affected,
			AICoreAccuracy: sd.accuracy,
		})
	}
	return out, nil
}

func (s *Source) FetchDashboard(ctx context.Context) (dashboard.Summary, error) {
	all := append(s.assets(market.ClassStock), s.assets(market.ClassCrypto)...)
	byChange := append([]market.Asset(nil), all...)
	sort.SliceStable(byChange, func(i, j int) bool {
		return byChange[i].ChangePercent > byChange[j].ChangePercent
	})

	articles, _ := s.FetchNews(ctx)
	alerts, _ := s.FetchAlerts(ctx)

	return dashboard.Summary{
		TopGainers:   head(byChange, 3),
		TopLosers:    tail(byChange, 3),
		RecentNews:   articles[:min(3, len(articles))],
		ActiveAlerts: alerts[:min(5, len(alerts))],
	}, nil
}

func head(assets []market.Asset, n int) []market.Asset {
	return append([]market.Asset(nil), assets[:min(n, len(assets))]...)
}

func tail(assets []market.Asset, n int) []market.Asset {
	if n > len(assets) {
		n = len(assets)
	}
	out := make([]market.Asset, 0, n)
	for i := len(assets) - 1; i >= len(assets)-n; i-- {
		out = append(out, assets[i])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
