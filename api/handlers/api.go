package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/demodata"
	"github.com/t2t/waste-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router  *mux.Router
	Handler http.Handler
	Config  config.Config
	Metrics *api.Metrics

	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// NewRouter creates a new mux router and all the routes served by the api
func NewRouter(stores databases.Stores, conf config.Config, metrics *api.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(api.Middleware(metrics))

	auth := Auth{DB: stores.Users}
	u := User{DB: stores.Users}
	rep := Report{DB: stores.Reports}
	b := Bin{DB: stores.Bins}
	s := Schedule{DB: stores.Schedules}
	d := Driver{DB: stores.Drivers}
	an := Analytics{RDB: stores.Reports, BDB: stores.Bins}
	demo := Demo{Seeder: demodata.NewSeeder(stores)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	if metrics != nil {
		r.Handle("/metrics", metrics.Handler()).Methods("GET")
	}

	apiRoutes := r.PathPrefix("/api").Subrouter()

	apiRoutes.HandleFunc("/", rootHandler).Methods("GET")

	apiRoutes.HandleFunc("/auth/login", auth.LoginHandler).Methods("POST")

	apiRoutes.HandleFunc("/users", u.CreateUserHandler).Methods("POST")
	apiRoutes.HandleFunc("/users/{id}", u.UserByIDHandler).Methods("GET")

	apiRoutes.HandleFunc("/reports", rep.CreateReportHandler).Methods("POST")
	apiRoutes.HandleFunc("/reports", rep.ReportsHandler).Methods("GET")
	apiRoutes.HandleFunc("/reports/{id}/status", rep.UpdateReportStatusHandler).Methods("PUT")

	// alerts must be registered before any /bins/{id} style route
	apiRoutes.HandleFunc("/bins/alerts", b.BinAlertsHandler).Methods("GET")
	apiRoutes.HandleFunc("/bins", b.BinsHandler).Methods("GET")

	apiRoutes.HandleFunc("/schedules", s.SchedulesHandler).Methods("GET")
	apiRoutes.HandleFunc("/schedules", s.CreateScheduleHandler).Methods("POST")

	apiRoutes.HandleFunc("/drivers", d.DriversHandler).Methods("GET")
	apiRoutes.HandleFunc("/drivers/{id}", d.DriverByIDHandler).Methods("GET")
	apiRoutes.HandleFunc("/drivers/{id}/assign", d.AssignDriverHandler).Methods("PUT")

	apiRoutes.HandleFunc("/analytics/overview", an.OverviewHandler).Methods("GET")

	if conf.EnableDemoSeed {
		apiRoutes.HandleFunc("/init-demo-data", demo.InitDemoDataHandler).Methods("POST")
	} else {
		apiRoutes.HandleFunc("/init-demo-data", demoDisabledHandler).Methods("POST")
	}

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize(ctx context.Context) error {
	client, err := databases.NewClient(ctx, &a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, a.Config.QueryTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		// if we fail to reach the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping database: %w", err)
	}
	zap.S().Infow("waste-api has connected to the database", "database", a.Config.DatabaseName)

	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	api.QueryTimeout = a.Config.QueryTimeout

	zap.S().Warn("login is demo only: every login returns the same token and no route checks it")
	if a.Config.EnableDemoSeed {
		zap.S().Warn("POST /api/init-demo-data is enabled and wipes every collection")
	}

	a.initializeRoutes()
	return nil
}

// Stores returns the typed collection stores, valid after Initialize
func (a *App) Stores() databases.Stores {
	return databases.NewStores(a.dbHelper)
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	if err := a.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	zap.S().Info("waste-api has disconnected from the database")
	return nil
}

func (a *App) initializeRoutes() {
	if a.Metrics == nil {
		a.Metrics = api.NewMetrics()
	}
	a.Router = NewRouter(a.Stores(), a.Config, a.Metrics)
	a.Handler = api.Recovery(api.CORS(a.Config.CORSOrigins)(a.Router))
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthCheckResponse{Alive: true})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Hello World"})
}

func demoDisabledHandler(w http.ResponseWriter, r *http.Request) {
	config.ErrorStatus("demo data seeding is disabled", http.StatusForbidden, w, errors.New("ENABLE_DEMO_SEED is false"))
}
