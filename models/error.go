package models

// ErrorMessageResponse is the body written for every failed request
type ErrorMessageResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error,omitempty"`
}

// MessageResponse is the body written by endpoints that only acknowledge
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
