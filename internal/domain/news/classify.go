package news

import "strings"

// Sentiment labels, derived from the 0–1 sentiment score.
const (
	SentimentBullish = "bullish"
	SentimentNeutral = "neutral"
	SentimentBearish = "bearish"
)

// categoryBucket covers every category the feed documents. Unknown
// categories (the feed is not schema-validated) fall back to "general".
var categoryBucket = map[string]string{
	"earnings":   "earnings",
	"technology": "technology",
	"crypto":     "crypto",
	"market":     "market",
	"regulatory": "regulatory",
	"macro":      "macro",
}

// CategoryBucket maps a raw category tag to a grouping bucket,
// case-insensitively.
func CategoryBucket(category string) string {
	if b, ok := categoryBucket[strings.ToLower(category)]; ok {
		return b
	}
	return "general"
}

// SentimentLabel classifies a 0–1 sentiment score: >= 0.7 bullish,
// >= 0.5 neutral, below that bearish.
func SentimentLabel(score float64) string {
	switch {
	case score >= 0.7:
		return SentimentBullish
	case score >= 0.5:
		return SentimentNeutral
	default:
		return SentimentBearish
	}
}
