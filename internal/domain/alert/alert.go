package alert

import "time"

// Type 列舉警報的種類標籤，上游資料未經 schema 驗證，可能出現未知值。
type Type string

const (
	TypePriceMovement Type = "price_movement"
	TypeVolumeSpike   Type = "volume_spike"
	TypeNewsImpact    Type = "news_impact"
	TypePortfolioRisk Type = "portfolio_risk"
	TypeSystem        Type = "system"
)

// Alert 描述一則使用者警報，隨同步週期整批汰換。
type Alert struct {
	ID             string    `json:"id"`
	Type           Type      `json:"type"`
	Severity       Severity  `json:"severity"`
	Title          string    `json:"title,omitempty"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	ActionRequired bool      `json:"actionRequired,omitempty"`
	AffectedAssets []string  `json:"affectedAssets,omitempty"`
	AICoreAccuracy float64   `json:"aiCoreAccuracy,omitempty"` // 0–1 信心值
}
