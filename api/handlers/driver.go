package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// Driver exported for testing purposes
type Driver struct {
	DB databases.DriverDatabase
}

// DriversHandler lists up to 100 drivers
func (d Driver) DriversHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	drivers, err := d.DB.Find(ctx, bson.M{}, databases.ListOptions())
	if err != nil {
		config.ErrorStatus("failed to get drivers", http.StatusInternalServerError, w, err)
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	writeJSON(w, http.StatusOK, drivers)
}

// DriverByIDHandler returns a single driver by id
func (d Driver) DriverByIDHandler(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	driver, err := d.DB.FindOne(ctx, bson.M{"_id": driverID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("Driver not found", http.StatusNotFound, w, nil)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get driver by ID", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, driver)
}

// AssignDriverHandler puts a driver on a route and marks them unavailable.
// The route id is free text and there is no way to unassign.
func (d Driver) AssignDriverHandler(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]
	routeID := r.URL.Query().Get("route_id")
	if routeID == "" {
		config.ErrorStatus("route_id is required", http.StatusUnprocessableEntity, w, errors.New("missing route_id query parameter"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$set": bson.M{"current_route": routeID, "availability": false}}
	res, err := d.DB.UpdateOne(ctx, bson.M{"_id": driverID}, update)
	if err != nil {
		config.ErrorStatus("failed to assign driver", http.StatusInternalServerError, w, err)
		return
	}
	if res != nil && res.MatchedCount == 0 {
		zap.S().Warnw("assign matched no driver", "driverId", driverID, "routeId", routeID)
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Driver assigned successfully"})
}
