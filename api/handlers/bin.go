package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// Bin exported for testing purposes
type Bin struct {
	DB databases.BinDatabase
}

// BinsHandler lists up to 100 bins
func (b Bin) BinsHandler(w http.ResponseWriter, r *http.Request) {
	b.list(w, r, bson.M{})
}

// BinAlertsHandler lists up to 100 bins filled to the alert level or above
func (b Bin) BinAlertsHandler(w http.ResponseWriter, r *http.Request) {
	b.list(w, r, bson.M{"current_level": bson.M{"$gte": models.BinAlertLevel}})
}

func (b Bin) list(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bins, err := b.DB.Find(ctx, filter, databases.ListOptions())
	if err != nil {
		config.ErrorStatus("failed to get bins", http.StatusInternalServerError, w, err)
		return
	}
	if bins == nil {
		bins = []models.Bin{}
	}

	writeJSON(w, http.StatusOK, bins)
}
