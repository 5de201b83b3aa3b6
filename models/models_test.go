package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCitizen.Valid())
	assert.True(t, RoleWorker.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("driver").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_Title(t *testing.T) {
	assert.Equal(t, "Citizen", RoleCitizen.Title())
	assert.Equal(t, "Admin", RoleAdmin.Title())
	assert.Equal(t, "", Role("").Title())
}

func TestReportStatus_Valid(t *testing.T) {
	assert.True(t, StatusReported.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusResolved.Valid())
	assert.False(t, ReportStatus("closed").Valid())
}

func TestWasteType_Valid(t *testing.T) {
	assert.True(t, WasteElectronic.Valid())
	assert.False(t, WasteType("glass").Valid())
}

func TestNewAnalyticsOverview(t *testing.T) {
	tests := []struct {
		name               string
		total              int64
		resolved           int64
		bins               int64
		highPriority       int64
		expectedPending    int64
		expectedEfficiency float64
	}{
		{"empty collections", 0, 0, 0, 0, 0, 0},
		{"one of three resolved", 3, 1, 3, 2, 2, 33.3},
		{"two of three resolved", 3, 2, 1, 0, 1, 66.7},
		{"all resolved", 4, 4, 2, 1, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewAnalyticsOverview(tt.total, tt.resolved, tt.bins, tt.highPriority)
			assert.Equal(t, tt.expectedPending, o.PendingReports)
			assert.Equal(t, tt.expectedEfficiency, o.CollectionEfficiency)
			assert.Equal(t, tt.total-tt.resolved, o.PendingReports)
			assert.GreaterOrEqual(t, o.CollectionEfficiency, 0.0)
			assert.LessOrEqual(t, o.CollectionEfficiency, 100.0)
			assert.Equal(t, tt.bins, o.ActiveBins)
			assert.Equal(t, tt.highPriority, o.HighPriorityBins)
		})
	}
}
