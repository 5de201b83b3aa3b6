package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/models"
)

func TestAnalytics_OverviewHandler(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("CountDocuments", mock.Anything, bson.M{}).Return(int64(3), nil)
	s.reports.On("CountDocuments", mock.Anything, bson.M{"status": models.StatusResolved}).Return(int64(1), nil)
	s.bins.On("CountDocuments", mock.Anything, bson.M{}).Return(int64(3), nil)
	s.bins.On("CountDocuments", mock.Anything, bson.M{"current_level": bson.M{"$gte": 80}}).Return(int64(2), nil)

	rr := doRequest(t, s.router(), "GET", "/api/analytics/overview", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"total_reports": 3,
		"resolved_reports": 1,
		"pending_reports": 2,
		"active_bins": 3,
		"high_priority_bins": 2,
		"collection_efficiency": 33.3
	}`, rr.Body.String())
}

func TestAnalytics_OverviewHandlerEmptyStore(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	s.bins.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)

	rr := doRequest(t, s.router(), "GET", "/api/analytics/overview", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var overview models.AnalyticsOverview
	decode(t, rr, &overview)
	assert.Equal(t, 0.0, overview.CollectionEfficiency)
}

func TestAnalytics_OverviewHandlerStoreFailure(t *testing.T) {
	s := newTestStores(t)
	s.reports.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	rr := doRequest(t, s.router(), "GET", "/api/analytics/overview", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
