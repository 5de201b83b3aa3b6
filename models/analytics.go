package models

import "math"

// AnalyticsOverview is the aggregate returned by the analytics endpoint
type AnalyticsOverview struct {
	TotalReports         int64   `json:"total_reports"`
	ResolvedReports      int64   `json:"resolved_reports"`
	PendingReports       int64   `json:"pending_reports"`
	ActiveBins           int64   `json:"active_bins"`
	HighPriorityBins     int64   `json:"high_priority_bins"`
	CollectionEfficiency float64 `json:"collection_efficiency"`
}

// NewAnalyticsOverview derives the pending count and the efficiency
// percentage (one decimal place) from the raw counts. The denominator is
// floored at 1 so an empty reports collection yields 0.
func NewAnalyticsOverview(totalReports, resolvedReports, activeBins, highPriorityBins int64) AnalyticsOverview {
	denominator := totalReports
	if denominator < 1 {
		denominator = 1
	}
	efficiency := float64(resolvedReports) / float64(denominator) * 100

	return AnalyticsOverview{
		TotalReports:         totalReports,
		ResolvedReports:      resolvedReports,
		PendingReports:       totalReports - resolvedReports,
		ActiveBins:           activeBins,
		HighPriorityBins:     highPriorityBins,
		CollectionEfficiency: math.Round(efficiency*10) / 10,
	}
}
