// Package demodata installs the fixed demonstration dataset.
package demodata

import (
	"time"

	"github.com/t2t/waste-api/models"
)

// Dataset is the full set of seed records
type Dataset struct {
	Users   []models.User
	Reports []models.WasteReport
	Bins    []models.Bin
	Drivers []models.Driver
}

// NewDataset builds the seed records. Every timestamp is now and every id
// comes from newID, so the cross references between records line up.
func NewDataset(now time.Time, newID func() string) Dataset {
	citizen := models.User{ID: newID(), Name: "John Citizen", Email: "citizen@demo.com", Phone: "+1234567890", Role: models.RoleCitizen, EcoPoints: 350, CreatedAt: now}
	worker := models.User{ID: newID(), Name: "Mike Worker", Email: "worker@demo.com", Phone: "+1234567891", Role: models.RoleWorker, CreatedAt: now}
	admin := models.User{ID: newID(), Name: "Admin Smith", Email: "admin@demo.com", Phone: "+1234567892", Role: models.RoleAdmin, CreatedAt: now}

	resolvedAt := now
	reports := []models.WasteReport{
		{
			ID:          newID(),
			UserID:      citizen.ID,
			Title:       "Overflowing Bin on Main Street",
			Description: "The public bin near the coffee shop is overflowing with waste.",
			WasteType:   models.WasteGeneral,
			Location:    "123 Main Street",
			Latitude:    float64Ptr(40.7128),
			Longitude:   float64Ptr(-74.0060),
			Status:      models.StatusReported,
			CreatedAt:   now,
		},
		{
			ID:             newID(),
			UserID:         citizen.ID,
			Title:          "Illegal Dumping in Park",
			Description:    "Someone dumped construction waste in Central Park.",
			WasteType:      models.WasteHazardous,
			Location:       "Central Park",
			Latitude:       float64Ptr(40.7589),
			Longitude:      float64Ptr(-73.9851),
			Status:         models.StatusInProgress,
			AssignedWorker: stringPtr(worker.ID),
			CreatedAt:      now,
		},
		{
			ID:          newID(),
			UserID:      citizen.ID,
			Title:       "Recyclables Mixed with General Waste",
			Description: "Recyclable materials are being mixed with general waste at this location.",
			WasteType:   models.WasteRecyclable,
			Location:    "456 Oak Avenue",
			Latitude:    float64Ptr(40.7505),
			Longitude:   float64Ptr(-73.9934),
			Status:      models.StatusResolved,
			CreatedAt:   now,
			ResolvedAt:  &resolvedAt,
		},
	}

	bins := []models.Bin{
		{ID: newID(), Location: "Downtown Plaza", Latitude: 40.7128, Longitude: -74.0060, Capacity: 240, CurrentLevel: 85, WasteType: models.WasteGeneral, LastCollected: now, NextCollection: now},
		{ID: newID(), Location: "Park Entrance", Latitude: 40.7589, Longitude: -73.9851, Capacity: 120, CurrentLevel: 45, WasteType: models.WasteRecyclable, LastCollected: now, NextCollection: now},
		{ID: newID(), Location: "Shopping Center", Latitude: 40.7505, Longitude: -73.9934, Capacity: 180, CurrentLevel: 92, WasteType: models.WasteGeneral, LastCollected: now, NextCollection: now},
	}

	drivers := []models.Driver{
		{ID: newID(), Name: "Robert Johnson", Phone: "+1234567893", VehicleNumber: "WM-001", Shift: "morning", Availability: true},
		{ID: newID(), Name: "Sarah Wilson", Phone: "+1234567894", VehicleNumber: "WM-002", Shift: "evening", Availability: true},
		{ID: newID(), Name: "David Brown", Phone: "+1234567895", VehicleNumber: "WM-003", Shift: "morning", Availability: false, CurrentRoute: stringPtr("route-1")},
	}

	return Dataset{
		Users:   []models.User{citizen, worker, admin},
		Reports: reports,
		Bins:    bins,
		Drivers: drivers,
	}
}

func float64Ptr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }
