package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/t2t/waste-api/models"
)

// Defaults applied before the config file and the environment are read
const (
	DefaultDatabaseName = "waste_management"
	DefaultPort         = "8001"
	DefaultQueryTimeout = 10 * time.Second
)

// Config holds the project config values
type Config struct {
	URL            string        `yaml:"dbUri" validate:"required"`
	DatabaseName   string        `yaml:"dbName" validate:"required"`
	BaseURL        string        `yaml:"baseUrl"`
	Port           string        `yaml:"port" validate:"required,numeric"`
	Env            string        `yaml:"env" validate:"omitempty,oneof=local development production"`
	LogFile        string        `yaml:"logFile"`
	CORSOrigins    []string      `yaml:"corsOrigins" validate:"min=1,dive,required"`
	QueryTimeout   time.Duration `yaml:"queryTimeout" validate:"gt=0"`
	EnableDemoSeed bool          `yaml:"enableDemoSeed"`
}

var validate = validator.New()

// New sets up all config related services from the environment alone
func New() *Config {
	conf := defaults()
	conf.applyEnv()

	if _, err := setLogger(conf.Env, conf.LogFile); err != nil {
		_, _ = setLogger("", "")
		zap.S().With(err).Warn("falling back to example logger")
	}

	return conf
}

// Load builds the config from, in increasing precedence: defaults, the
// yaml file at path (skipped when path is empty), a .env file in the
// working directory and the process environment. The result is validated
// and the global zap logger is replaced to match it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	conf := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	conf.applyEnv()

	if err := Validate(conf); err != nil {
		return nil, err
	}

	if _, err := setLogger(conf.Env, conf.LogFile); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return conf, nil
}

// Validate checks the config struct rules
func Validate(conf *Config) error {
	if err := validate.Struct(conf); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		DatabaseName:   DefaultDatabaseName,
		Port:           DefaultPort,
		CORSOrigins:    []string{"*"},
		QueryTimeout:   DefaultQueryTimeout,
		EnableDemoSeed: true,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_URI"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.DatabaseName = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv("QUERY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.QueryTimeout = d
		} else {
			zap.S().Warnw("ignoring invalid QUERY_TIMEOUT", "value", v, "error", err)
		}
	}
	if v := os.Getenv("ENABLE_DEMO_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.EnableDemoSeed = b
		} else {
			zap.S().Warnw("ignoring invalid ENABLE_DEMO_SEED", "value", v, "error", err)
		}
	}
}

func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	resp := models.ErrorMessageResponse{Detail: message}
	if err != nil {
		resp.Error = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
