package alert

// Severity is an ordered tag: critical outranks high outranks medium
// outranks low. Values outside the enum sort after low and land in the
// neutral bucket instead of failing, because feeds are not schema-validated
// before they reach us.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Bucket keys drive badge styling without leaking concrete colors.
const (
	BucketDanger   = "danger"
	BucketWarning  = "warning"
	BucketNotice   = "notice"
	BucketPositive = "positive"
	BucketNeutral  = "neutral"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

var severityBucket = map[Severity]string{
	SeverityCritical: BucketDanger,
	SeverityHigh:     BucketWarning,
	SeverityMedium:   BucketNotice,
	SeverityLow:      BucketPositive,
}

var typeIcon = map[Type]string{
	TypePriceMovement: "trending-up",
	TypeVolumeSpike:   "activity",
	TypeNewsImpact:    "newspaper",
	TypePortfolioRisk: "briefcase",
	TypeSystem:        "settings",
}

// SeverityOrder returns the fixed descending display order.
func SeverityOrder() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// Rank returns the sort position of a severity, strongest first. Unknown
// severities rank after low.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// Bucket maps a severity to its presentation bucket.
func (s Severity) Bucket() string {
	if b, ok := severityBucket[s]; ok {
		return b
	}
	return BucketNeutral
}

// Icon maps an alert type to an icon key, with a fallback for unknown types.
func (t Type) Icon() string {
	if icon, ok := typeIcon[t]; ok {
		return icon
	}
	return "bell"
}
