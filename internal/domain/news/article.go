package news

import (
	"time"

	"marketpulse/internal/domain/alert"
)

// Article 描述一則市場新聞，impact 與警報共用同一組嚴重度階序。
type Article struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Source         string         `json:"source"`
	Category       string         `json:"category"`
	Impact         alert.Severity `json:"impact"`
	Sentiment      float64        `json:"sentiment"` // 0–1
	Timestamp      time.Time      `json:"timestamp"`
	Summary        string         `json:"summary,omitempty"`
	AffectedAssets []string       `json:"affectedAssets,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
}
