package models

import (
	"strings"
	"time"
)

// Role is the kind of account a user holds
type Role string

// Roles recognised by the api
const (
	RoleCitizen Role = "citizen"
	RoleWorker  Role = "worker"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

// Title returns the role name with a leading capital, e.g. "Citizen"
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// User holds the structure for the users collection in mongo
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Role      Role      `json:"role" bson:"role"`
	EcoPoints int       `json:"eco_points" bson:"eco_points"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserCreate is the payload accepted when creating a user
type UserCreate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Role  Role   `json:"role" validate:"required,oneof=citizen worker admin"`
}

// LoginRequest is the payload accepted by the demo login
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Role  Role   `json:"role" validate:"required,oneof=citizen worker admin"`
}

// LoginResponse returns the resolved user and the session token
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
