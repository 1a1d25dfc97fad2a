package syncstore

import (
	"context"
	"time"

	"marketpulse/internal/domain/alert"
	"marketpulse/internal/domain/dashboard"
	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/news"
	"marketpulse/internal/domain/portfolio"
)

// 六個資料來源的名稱，錯誤回報與記錄皆以此為準。
const (
	FeedDashboard = "dashboard"
	FeedStocks    = "stocks"
	FeedCrypto    = "crypto"
	FeedPortfolio = "portfolio"
	FeedNews      = "news"
	FeedAlerts    = "alerts"
)

// Snapshot 為單次同步週期的原子產物：六個資料來源要嘛全部就緒、
// 要嘛整份不安裝，外部永遠看不到只更新一半的狀態。
type Snapshot struct {
	Dashboard dashboard.Summary   `json:"dashboard"`
	Stocks    []market.Asset      `json:"stocks"`
	Crypto    []market.Asset      `json:"crypto"`
	Portfolio portfolio.Portfolio `json:"portfolio"`
	News      []news.Article      `json:"news"`
	Alerts    []alert.Alert       `json:"alerts"`
	FetchedAt time.Time           `json:"fetchedAt"`
}

// AllAssets 合併股票與加密資產為單一清單，股票在前。
func (s *Snapshot) AllAssets() []market.Asset {
	all := make([]market.Asset, 0, len(s.Stocks)+len(s.Crypto))
	all = append(all, s.Stocks...)
	all = append(all, s.Crypto...)
	return all
}

// FeedSource 定義六個資料來源的取得介面。每個呼叫彼此獨立、
// 無順序相依；重試策略屬於 Store，不在這一層。
type FeedSource interface {
	FetchDashboard(ctx context.Context) (dashboard.Summary, error)
	FetchStocks(ctx context.Context) ([]market.Asset, error)
	FetchCrypto(ctx context.Context) ([]market.Asset, error)
	FetchPortfolio(ctx context.Context) (portfolio.Portfolio, error)
	FetchNews(ctx context.Context) ([]news.Article, error)
	FetchAlerts(ctx context.Context) ([]alert.Alert, error)
}
