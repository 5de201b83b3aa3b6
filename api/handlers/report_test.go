package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/t2t/waste-api/models"
)

func TestReport_CreateReportHandler(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("InsertOne", mock.Anything, mock.MatchedBy(func(r models.WasteReport) bool {
		return r.Status == models.StatusReported && r.ResolvedAt == nil && r.AssignedWorker == nil
	})).Return(nil, nil)

	body := `{"user_id":"u-1","title":"Overflowing bin","description":"full","waste_type":"recyclable","location":"Main St","latitude":40.7}`
	rr := doRequest(t, s.router(), "POST", "/api/reports", body)

	assert.Equal(t, http.StatusOK, rr.Code)
	var report models.WasteReport
	decode(t, rr, &report)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "u-1", report.UserID)
	assert.Equal(t, models.StatusReported, report.Status)
	assert.Equal(t, models.WasteRecyclable, report.WasteType)
	if assert.NotNil(t, report.Latitude) {
		assert.Equal(t, 40.7, *report.Latitude)
	}
	assert.Nil(t, report.Longitude)
	assert.Nil(t, report.ResolvedAt)
}

func TestReport_CreateReportHandlerInvalidWasteType(t *testing.T) {
	body := `{"user_id":"u-1","title":"t","description":"d","waste_type":"plutonium","location":"l"}`
	rr := doRequest(t, newTestStores(t).router(), "POST", "/api/reports", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestReport_ReportsHandlerFilters(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter bson.M
	}{
		{"no filter", "", bson.M{}},
		{"by user", "?user_id=u-1", bson.M{"user_id": "u-1"}},
		{"by status", "?status=resolved", bson.M{"status": models.StatusResolved}},
		{"by user and status", "?user_id=u-1&status=in_progress", bson.M{"user_id": "u-1", "status": models.StatusInProgress}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStores(t)
			s.reports.On("Find", mock.Anything, tt.filter, mock.Anything).
				Return([]models.WasteReport{{ID: "r-1", Status: models.StatusResolved}}, nil)

			rr := doRequest(t, s.router(), "GET", "/api/reports"+tt.query, "")

			assert.Equal(t, http.StatusOK, rr.Code)
			var reports []models.WasteReport
			decode(t, rr, &reports)
			assert.Len(t, reports, 1)
		})
	}
}

func TestReport_ReportsHandlerEmptyList(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(nil, nil)

	rr := doRequest(t, s.router(), "GET", "/api/reports", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestReport_ReportsHandlerInvalidStatus(t *testing.T) {
	rr := doRequest(t, newTestStores(t).router(), "GET", "/api/reports?status=lost", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestReport_ReportsHandlerStoreFailure(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	rr := doRequest(t, s.router(), "GET", "/api/reports", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestReport_UpdateReportStatusHandlerResolved(t *testing.T) {
	var update bson.M
	s := newTestStores(t)
	s.reports.On("UpdateOne", mock.Anything, bson.M{"_id": "r-1"}, mock.Anything).
		Run(func(args mock.Arguments) { update = args.Get(2).(bson.M) }).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	before := time.Now().UTC().Add(-time.Second)
	rr := doRequest(t, s.router(), "PUT", "/api/reports/r-1/status?status=resolved&worker_id=w-1", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Status updated successfully"}`, rr.Body.String())

	set := update["$set"].(bson.M)
	assert.Equal(t, models.StatusResolved, set["status"])
	assert.Equal(t, "w-1", set["assigned_worker"])
	resolvedAt, ok := set["resolved_at"].(time.Time)
	if assert.True(t, ok) {
		assert.True(t, resolvedAt.After(before))
	}
}

func TestReport_UpdateReportStatusHandlerInProgress(t *testing.T) {
	var update bson.M
	s := newTestStores(t)
	s.reports.On("UpdateOne", mock.Anything, bson.M{"_id": "r-1"}, mock.Anything).
		Run(func(args mock.Arguments) { update = args.Get(2).(bson.M) }).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	rr := doRequest(t, s.router(), "PUT", "/api/reports/r-1/status?status=in_progress", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, bson.M{"$set": bson.M{"status": models.StatusInProgress}}, update)
}

func TestReport_UpdateReportStatusHandlerUnknownID(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("UpdateOne", mock.Anything, bson.M{"_id": "nope"}, mock.Anything).
		Return(&mongo.UpdateResult{}, nil)

	rr := doRequest(t, s.router(), "PUT", "/api/reports/nope/status?status=resolved", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Status updated successfully"}`, rr.Body.String())
}

func TestReport_UpdateReportStatusHandlerBadStatus(t *testing.T) {
	router := newTestStores(t).router()

	for _, target := range []string{"/api/reports/r-1/status", "/api/reports/r-1/status?status=closed"} {
		rr := doRequest(t, router, "PUT", target, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, target)
	}
}
