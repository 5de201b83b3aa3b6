// Package docs Waste Management API.
//
// Documentation of the waste management API.
//
//     Schemes: http, https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/t2t/waste-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/auth/login auth login
// Finds the user with the given email and role, creating a demo user when there is none.
// responses:
//   200: loginResponse
//   422: errorResponse

// The user and the demo token
// swagger:response loginResponse
type loginResponseWrapper struct {
	// in:body
	Body models.LoginResponse
}

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.LoginRequest
}

// swagger:route POST /api/users users createUser
// Creates a user.
// responses:
//   200: userResponse
//   422: errorResponse

// swagger:route GET /api/users/{id} users userByID
// Gets a single user by ID.
// responses:
//   200: userResponse
//   404: errorResponse

// A single user
// swagger:response userResponse
type userResponseWrapper struct {
	// in:body
	Body models.User
}

// swagger:parameters createUser
type createUserParamsWrapper struct {
	// in:body
	Body models.UserCreate
}

// swagger:route POST /api/reports reports createReport
// Files a waste report with status reported.
// responses:
//   200: reportResponse
//   422: errorResponse

// swagger:route GET /api/reports reports listReports
// Lists up to 100 reports, filtered by user_id and status when given.
// responses:
//   200: reportsResponse
//   422: errorResponse

// swagger:route PUT /api/reports/{id}/status reports updateReportStatus
// Sets the status of a report. Resolving a report stamps resolved_at.
// responses:
//   200: messageResponse
//   422: errorResponse

// A single report
// swagger:response reportResponse
type reportResponseWrapper struct {
	// in:body
	Body models.WasteReport
}

// A list of reports
// swagger:response reportsResponse
type reportsResponseWrapper struct {
	// in:body
	Body []models.WasteReport
}

// swagger:parameters createReport
type createReportParamsWrapper struct {
	// in:body
	Body models.WasteReportCreate
}

// swagger:route GET /api/bins bins listBins
// Lists up to 100 bins.
// responses:
//   200: binsResponse

// swagger:route GET /api/bins/alerts bins binAlerts
// Lists up to 100 bins that are at least 60% full.
// responses:
//   200: binsResponse

// A list of bins
// swagger:response binsResponse
type binsResponseWrapper struct {
	// in:body
	Body []models.Bin
}

// swagger:route GET /api/schedules schedules listSchedules
// Lists up to 100 schedules, filtered by worker_id when given.
// responses:
//   200: schedulesResponse

// swagger:route POST /api/schedules schedules createSchedule
// Stores a collection schedule as sent.
// responses:
//   200: scheduleResponse
//   422: errorResponse

// A list of schedules
// swagger:response schedulesResponse
type schedulesResponseWrapper struct {
	// in:body
	Body []models.Schedule
}

// A single schedule
// swagger:response scheduleResponse
type scheduleResponseWrapper struct {
	// in:body
	Body models.Schedule
}

// swagger:route GET /api/drivers drivers listDrivers
// Lists up to 100 drivers.
// responses:
//   200: driversResponse

// swagger:route GET /api/drivers/{id} drivers driverByID
// Gets a single driver by ID.
// responses:
//   200: driverResponse
//   404: errorResponse

// swagger:route PUT /api/drivers/{id}/assign drivers assignDriver
// Puts a driver on a route and marks them unavailable.
// responses:
//   200: messageResponse
//   422: errorResponse

// A list of drivers
// swagger:response driversResponse
type driversResponseWrapper struct {
	// in:body
	Body []models.Driver
}

// A single driver
// swagger:response driverResponse
type driverResponseWrapper struct {
	// in:body
	Body models.Driver
}

// swagger:route GET /api/analytics/overview analytics overview
// Summarises reports and bins.
// responses:
//   200: overviewResponse

// Report and bin totals
// swagger:response overviewResponse
type overviewResponseWrapper struct {
	// in:body
	Body models.AnalyticsOverview
}

// swagger:route POST /api/init-demo-data demo initDemoData
// Wipes every collection and loads the demo dataset.
// responses:
//   200: messageResponse
//   403: errorResponse
//   500: errorResponse

// A confirmation message
// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

// An error
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
