package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/t2t/waste-api/api/handlers"
	"github.com/t2t/waste-api/models"
)

func TestAuth_LoginHandlerCreatesDemoUser(t *testing.T) {
	tests := []struct {
		role       models.Role
		wantName   string
		wantPoints int
	}{
		{models.RoleCitizen, "Demo Citizen", 250},
		{models.RoleWorker, "Demo Worker", 0},
		{models.RoleAdmin, "Demo Admin", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			s := newTestStores(t)
			s.users.On("FindOne", mock.Anything, bson.M{"email": "new@demo.com", "role": tt.role}).
				Return(nil, mongo.ErrNoDocuments)
			s.users.On("InsertOne", mock.Anything, mock.MatchedBy(func(u models.User) bool {
				return u.Name == tt.wantName && u.EcoPoints == tt.wantPoints && u.Phone == handlers.DemoPhone
			})).Return(nil, nil)

			rr := doRequest(t, s.router(), "POST", "/api/auth/login", `{"email":"new@demo.com","role":"`+string(tt.role)+`"}`)

			assert.Equal(t, http.StatusOK, rr.Code)
			var resp models.LoginResponse
			decode(t, rr, &resp)
			assert.Equal(t, handlers.DemoToken, resp.Token)
			assert.Equal(t, tt.wantName, resp.User.Name)
			assert.Equal(t, "new@demo.com", resp.User.Email)
			assert.Equal(t, tt.role, resp.User.Role)
			assert.Equal(t, tt.wantPoints, resp.User.EcoPoints)
			assert.NotEmpty(t, resp.User.ID)
		})
	}
}

func TestAuth_LoginHandlerReturnsExistingUser(t *testing.T) {
	existing := &models.User{
		ID:        "u-1",
		Name:      "John Citizen",
		Email:     "citizen@demo.com",
		Phone:     "+1234567890",
		Role:      models.RoleCitizen,
		EcoPoints: 350,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s := newTestStores(t)
	s.users.On("FindOne", mock.Anything, bson.M{"email": "citizen@demo.com", "role": models.RoleCitizen}).Return(existing, nil)

	router := s.router()
	for i := 0; i < 2; i++ {
		rr := doRequest(t, router, "POST", "/api/auth/login", `{"email":"citizen@demo.com","role":"citizen"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp models.LoginResponse
		decode(t, rr, &resp)
		assert.Equal(t, *existing, resp.User)
		assert.Equal(t, "demo_token_123", resp.Token)
	}
	s.users.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestAuth_LoginHandlerRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed json", `{"email":`},
		{"missing email", `{"role":"citizen"}`},
		{"unknown role", `{"email":"a@b.c","role":"mayor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, newTestStores(t).router(), "POST", "/api/auth/login", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		})
	}
}

func TestAuth_LoginHandlerStoreFailure(t *testing.T) {
	s := newTestStores(t)
	s.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	rr := doRequest(t, s.router(), "POST", "/api/auth/login", `{"email":"a@b.c","role":"worker"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
