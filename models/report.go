package models

import "time"

// WasteType classifies the waste in a report or a bin
type WasteType string

// Waste types recognised by the api
const (
	WasteGeneral    WasteType = "general"
	WasteRecyclable WasteType = "recyclable"
	WasteHazardous  WasteType = "hazardous"
	WasteOrganic    WasteType = "organic"
	WasteElectronic WasteType = "e_waste"
)

// Valid reports whether w is one of the known waste types
func (w WasteType) Valid() bool {
	switch w {
	case WasteGeneral, WasteRecyclable, WasteHazardous, WasteOrganic, WasteElectronic:
		return true
	}
	return false
}

// ReportStatus is the lifecycle state of a waste report
type ReportStatus string

// Report statuses
const (
	StatusReported   ReportStatus = "reported"
	StatusInProgress ReportStatus = "in_progress"
	StatusResolved   ReportStatus = "resolved"
)

// Valid reports whether s is one of the known statuses
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusReported, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// WasteReport holds the structure for the reports collection in mongo
type WasteReport struct {
	ID             string       `json:"id" bson:"_id"`
	UserID         string       `json:"user_id" bson:"user_id"`
	Title          string       `json:"title" bson:"title"`
	Description    string       `json:"description" bson:"description"`
	WasteType      WasteType    `json:"waste_type" bson:"waste_type"`
	Location       string       `json:"location" bson:"location"`
	Latitude       *float64     `json:"latitude" bson:"latitude"`
	Longitude      *float64     `json:"longitude" bson:"longitude"`
	ImageURL       *string      `json:"image_url" bson:"image_url"`
	Status         ReportStatus `json:"status" bson:"status"`
	AssignedWorker *string      `json:"assigned_worker" bson:"assigned_worker"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
	ResolvedAt     *time.Time   `json:"resolved_at" bson:"resolved_at"`
}

// WasteReportCreate is the payload accepted when a citizen files a report
type WasteReportCreate struct {
	UserID      string    `json:"user_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	WasteType   WasteType `json:"waste_type" validate:"required,oneof=general recyclable hazardous organic e_waste"`
	Location    string    `json:"location" validate:"required"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ImageURL    *string   `json:"image_url"`
}
