package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/demodata"
	"github.com/t2t/waste-api/models"
)

// Demo exported for testing purposes
type Demo struct {
	Seeder *demodata.Seeder
}

// InitDemoDataHandler wipes every collection and installs the demo dataset.
// It deliberately runs on the request context without a query timeout so a
// slow store does not leave the reset half done.
func (d Demo) InitDemoDataHandler(w http.ResponseWriter, r *http.Request) {
	steps, err := d.Seeder.Reset(r.Context())
	if err != nil {
		config.ErrorStatus("failed to initialize demo data", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("demo data initialized", "steps", len(steps))

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Demo data initialized successfully"})
}
