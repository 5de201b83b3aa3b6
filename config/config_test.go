package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t2t/waste-api/models"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, DefaultPort, conf.Port)
	assert.Equal(t, []string{"*"}, conf.CORSOrigins)
	assert.True(t, conf.EnableDemoSeed)
}

func TestNewReadsOptionalEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://t2t.example.com,")
	t.Setenv("QUERY_TIMEOUT", "3s")
	t.Setenv("ENABLE_DEMO_SEED", "false")
	conf := New()

	assert.Equal(t, []string{"http://localhost:3000", "https://t2t.example.com"}, conf.CORSOrigins)
	assert.Equal(t, 3*time.Second, conf.QueryTimeout)
	assert.False(t, conf.EnableDemoSeed)
}

func TestNewIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("QUERY_TIMEOUT", "soon")
	conf := New()

	assert.Equal(t, DefaultQueryTimeout, conf.QueryTimeout)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waste-api.yaml")
	err := os.WriteFile(path, []byte(`
dbUri: mongodb://db:27017
dbName: waste_yaml
port: "9000"
env: production
corsOrigins:
  - https://admin.example.com
queryTimeout: 5s
enableDemoSeed: false
`), 0o600)
	require.NoError(t, err)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", conf.URL)
	assert.Equal(t, "waste_yaml", conf.DatabaseName)
	assert.Equal(t, "9000", conf.Port)
	assert.Equal(t, []string{"https://admin.example.com"}, conf.CORSOrigins)
	assert.Equal(t, 5*time.Second, conf.QueryTimeout)
	assert.False(t, conf.EnableDemoSeed)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waste-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dbUri: mongodb://db:27017\nport: \"9000\"\n"), 0o600))
	t.Setenv("PORT", "9100")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", conf.Port)
}

func TestLoadMissingURI(t *testing.T) {
	t.Setenv("DB_URI", "")

	conf, err := Load("")
	assert.Nil(t, conf)
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, conf)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidateRejectsBadEnv(t *testing.T) {
	conf := defaults()
	conf.URL = "mongodb://127.0.0.1:27017"
	conf.Env = "staging"

	assert.Error(t, Validate(conf))
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("User not found", http.StatusNotFound, rr, errors.New("no documents"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.ErrorMessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body.Detail)
	assert.Equal(t, "no documents", body.Error)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development", "")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production", "")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local", "")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}
