package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// Schedule exported for testing purposes
type Schedule struct {
	DB databases.ScheduleDatabase
}

// SchedulesHandler lists up to 100 schedules, optionally for one worker
func (s Schedule) SchedulesHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter["worker_id"] = workerID
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	schedules, err := s.DB.Find(ctx, filter, databases.ListOptions())
	if err != nil {
		config.ErrorStatus("failed to get schedules", http.StatusInternalServerError, w, err)
		return
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}

	writeJSON(w, http.StatusOK, schedules)
}

// CreateScheduleHandler stores the schedule as sent. Only missing id,
// status and route_order are filled in; route_order is never computed.
func (s Schedule) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var schedule models.Schedule
	if err := decodeBody(r, &schedule); err != nil {
		config.ErrorStatus("invalid schedule", http.StatusUnprocessableEntity, w, err)
		return
	}

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	if schedule.Status == "" {
		schedule.Status = models.ScheduleStatusPending
	}
	if schedule.RouteOrder == nil {
		schedule.RouteOrder = []string{}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := s.DB.InsertOne(ctx, schedule); err != nil {
		config.ErrorStatus("failed to create schedule", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}
