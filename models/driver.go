package models

// Driver holds the structure for the drivers collection in mongo
type Driver struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Phone         string  `json:"phone" bson:"phone"`
	VehicleNumber string  `json:"vehicle_number" bson:"vehicle_number"`
	Shift         string  `json:"shift" bson:"shift"` // morning, evening or night
	Availability  bool    `json:"availability" bson:"availability"`
	CurrentRoute  *string `json:"current_route" bson:"current_route"`
}
