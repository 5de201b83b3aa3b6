package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// Analytics exported for testing purposes
type Analytics struct {
	RDB databases.ReportDatabase
	BDB databases.BinDatabase
}

// OverviewHandler counts reports and bins on every call
func (a Analytics) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	totalReports, err := a.RDB.CountDocuments(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to count reports", http.StatusInternalServerError, w, err)
		return
	}
	resolvedReports, err := a.RDB.CountDocuments(ctx, bson.M{"status": models.StatusResolved})
	if err != nil {
		config.ErrorStatus("failed to count resolved reports", http.StatusInternalServerError, w, err)
		return
	}
	activeBins, err := a.BDB.CountDocuments(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to count bins", http.StatusInternalServerError, w, err)
		return
	}
	highPriorityBins, err := a.BDB.CountDocuments(ctx, bson.M{"current_level": bson.M{"$gte": models.BinHighPriorityLevel}})
	if err != nil {
		config.ErrorStatus("failed to count high priority bins", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewAnalyticsOverview(totalReports, resolvedReports, activeBins, highPriorityBins))
}
