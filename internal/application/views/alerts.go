package views

import (
	"sort"

	"marketpulse/internal/domain/alert"
)

// AlertGroup is one severity bucket of the grouped alert view.
type AlertGroup struct {
	Severity alert.Severity `json:"severity"`
	Alerts   []alert.Alert  `json:"alerts"`
}

// FilterAlerts keeps alerts of the given severity; "all" or empty keeps
// everything.
func FilterAlerts(alerts []alert.Alert, severity string) []alert.Alert {
	if severity == "" || severity == "all" {
		return append([]alert.Alert(nil), alerts...)
	}
	out := make([]alert.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Severity == alert.Severity(severity) {
			out = append(out, a)
		}
	}
	return out
}

// AlertList is the list view: filter by severity, newest first. Equal
// timestamps break on ID so the order is deterministic.
func AlertList(alerts []alert.Alert, severity string) []alert.Alert {
	out := FilterAlerts(alerts, severity)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AlertGroups is the grouped view: filter by severity, then partition in the
// fixed descending severity order. Severities with no matching alerts are
// omitted entirely rather than rendered as empty groups.
func AlertGroups(alerts []alert.Alert, severity string) []AlertGroup {
	filtered := FilterAlerts(alerts, severity)
	buckets := make(map[alert.Severity][]alert.Alert, len(filtered))
	for _, a := range filtered {
		buckets[a.Severity] = append(buckets[a.Severity], a)
	}

	var out []AlertGroup
	for _, s := range alert.SeverityOrder() {
		if group, ok := buckets[s]; ok {
			out = append(out, AlertGroup{Severity: s, Alerts: group})
			delete(buckets, s)
		}
	}
	// Severities outside the documented enum trail the fixed order instead
	// of being dropped.
	if len(buckets) > 0 {
		rest := make([]alert.Severity, 0, len(buckets))
		for s := range buckets {
			rest = append(rest, s)
		}
		sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
		for _, s := range rest {
			out = append(out, AlertGroup{Severity: s, Alerts: buckets[s]})
		}
	}
	return out
}

// CountAlerts tallies the unfiltered collection per severity for the filter
// badges.
func CountAlerts(alerts []alert.Alert) map[alert.Severity]int {
	counts := make(map[alert.Severity]int, len(alert.SeverityOrder()))
	for _, a := range alerts {
		counts[a.Severity]++
	}
	return counts
}
