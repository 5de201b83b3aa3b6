package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/t2t/waste-api/api"
	"github.com/t2t/waste-api/config"
	"github.com/t2t/waste-api/databases"
	"github.com/t2t/waste-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// CreateUserHandler stores a new user. Emails are not required to be unique.
func (u User) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreate
	if err := decodeBody(r, &req); err != nil {
		config.ErrorStatus("invalid user", http.StatusUnprocessableEntity, w, err)
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		CreatedAt: timeNow(),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := u.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UserByIDHandler returns a single user by id
func (u User) UserByIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": userID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("User not found", http.StatusNotFound, w, nil)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
