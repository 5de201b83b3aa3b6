package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// DemoToken is handed out by every login. Nothing ever checks it: login is
// a lookup by email and role, not an authentication boundary.
const DemoToken = "demo_token_123"

// DemoPhone is the phone number given to users created by login
const DemoPhone = "+1234567890"

// citizens start with some eco points so the dashboard has something to show
const citizenStartingPoints = 250

// Auth exported for testing purposes
type Auth struct {
	DB databases.UserDatabase
}

// LoginHandler returns the user with the given email and role, creating a
// demo user on first sight of the pair
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("invalid login request", http.StatusUnprocessableEntity, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindOne(ctx, bson.M{"email": req.Email, "role": req.Role})
	if err == nil {
		writeJSON(w, http.StatusOK, models.LoginResponse{User: *user, Token: DemoToken})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to look up user", http.StatusInternalServerError, w, err)
		return
	}

	newUser := models.User{
		ID:        uuid.NewString(),
		Name:      "Demo " + req.Role.Title(),
		Email:     req.Email,
		Phone:     DemoPhone,
		Role:      req.Role,
		CreatedAt: timeNow(),
	}
	if req.Role == models.RoleCitizen {
		newUser.EcoPoints = citizenStartingPoints
	}

	if _, err := a.DB.InsertOne(ctx, newUser); err != nil {
		config.ErrorStatus("failed to create demo user", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("created demo user on login", "userId", newUser.ID, "role", newUser.Role)

	writeJSON(w, http.StatusOK, models.LoginResponse{User: newUser, Token: DemoToken})
}
