package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// Report handles waste report requests
type Report struct {
	DB databases.ReportDatabase
}

// CreateReportHandler files a new waste report. The user_id is stored as
// given; it is not checked against the users collection.
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var req models.WasteReportCreate
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("invalid report", http.StatusUnprocessableEntity, w, err)
		return
	}

	report := models.WasteReport{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		WasteType:   req.WasteType,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ImageURL:    req.ImageURL,
		Status:      models.StatusReported,
		CreatedAt:   timeNow(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := re.DB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to create report", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ReportsHandler lists up to 100 reports, optionally filtered by user_id
// and status
func (re Report) ReportsHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter["user_id"] = userID
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := models.ReportStatus(s)
		if !status.Valid() {
			config.ErrorStatus("invalid status", http.StatusUnprocessableEntity, w, fmt.Errorf("unknown report status %q", s))
			return
		}
		filter["status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	reports, err := re.DB.Find(ctx, filter, databases.ListOptions())
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusInternalServerError, w, err)
		return
	}
	if reports == nil {
		reports = []models.WasteReport{}
	}

	writeJSON(w, http.StatusOK, reports)
}

// UpdateReportStatusHandler sets the status of a report, the assigned
// worker when worker_id is given, and resolved_at when the new status is
// resolved. An unknown report id is not an error.
func (re Report) UpdateReportStatusHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["id"]
	status := models.ReportStatus(r.URL.Query().Get("status"))
	if !status.Valid() {
		config.ErrorStatus("invalid status", http.StatusUnprocessableEntity, w, fmt.Errorf("unknown report status %q", status))
		return
	}

	set := bson.M{"status": status}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		set["assigned_worker"] = workerID
	}
	if status == models.StatusResolved {
		set["resolved_at"] = timeNow()
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := re.DB.UpdateOne(ctx, bson.M{"_id": reportID}, bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update report status", http.StatusInternalServerError, w, err)
		return
	}
	if res != nil && res.MatchedCount == 0 {
		zap.S().Warnw("status update matched no report", "reportId", reportID, "status", status)
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Status updated successfully"})
}
