package models

import "time"

// Bin holds the structure for the bins collection in mongo
type Bin struct {
	ID             string    `json:"id" bson:"_id"`
	Location       string    `json:"location" bson:"location"`
	Latitude       float64   `json:"latitude" bson:"latitude"`
	Longitude      float64   `json:"longitude" bson:"longitude"`
	Capacity       int       `json:"capacity" bson:"capacity"`           // liters
	CurrentLevel   int       `json:"current_level" bson:"current_level"` // percent full
	WasteType      WasteType `json:"waste_type" bson:"waste_type"`
	LastCollected  time.Time `json:"last_collected" bson:"last_collected"`
	NextCollection time.Time `json:"next_collection" bson:"next_collection"`
}

// Fill levels, in percent, that flag a bin
const (
	BinAlertLevel        = 60
	BinHighPriorityLevel = 80
)
