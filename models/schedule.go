package models

import "time"

// ScheduleStatusPending is the status a schedule gets when none is supplied
const ScheduleStatusPending = "pending"

// Schedule holds the structure for the schedules collection in mongo.
// RouteOrder is stored as given and never computed here.
type Schedule struct {
	ID            string    `json:"id" bson:"_id"`
	WorkerID      string    `json:"worker_id" bson:"worker_id" validate:"required"`
	Area          string    `json:"area" bson:"area" validate:"required"`
	Bins          []string  `json:"bins" bson:"bins" validate:"required"`
	ScheduledDate time.Time `json:"scheduled_date" bson:"scheduled_date" validate:"required"`
	Status        string    `json:"status" bson:"status"`
	RouteOrder    []string  `json:"route_order" bson:"route_order"`
}
