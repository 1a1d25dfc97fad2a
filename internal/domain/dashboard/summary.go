package dashboard

import (
	"marketpulse/internal/domain/alert"
	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/news"
)

// Summary 為後端預先聚合的儀表板摘要，各清單皆有上限筆數。
type Summary struct {
	TopGainers   []market.Asset `json:"topGainers"`
	TopLosers    []market.Asset `json:"topLosers"`
	RecentNews   []news.Article `json:"recentNews"`
	ActiveAlerts []alert.Alert  `json:"activeAlerts"`
}
