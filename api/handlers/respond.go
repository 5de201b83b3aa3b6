package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/t2t/waste-api/config"
)

var validate = validator.New()

// errEmptyBody is returned by decodeBody when the request has no body
var errEmptyBody = errors.New("request body is empty")

// timeNow is the clock used for created_at and resolved_at. Mongo keeps
// millisecond precision so the value is truncated to match what is read back.
func timeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// decodeBody reads the json body of r into dst and runs the struct
// validation rules on it
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// writeJSON marshals v and writes it with status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
