// Package logging builds the zap loggers used across the api.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Environments understood by New
const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// New creates a zap logger for the given environment. When file is set the
// logger also writes JSON lines to that path, rotated by lumberjack.
func New(env, file string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	switch env {
	case EnvProduction:
		logger, err = zap.NewProduction()
	case EnvDevelopment:
		logger, err = zap.NewDevelopment()
	case EnvLocal, "":
		logger = zap.NewExample()
	default:
		return nil, fmt.Errorf("unknown logging environment %q", env)
	}
	if err != nil {
		return nil, err
	}

	if file == "" {
		return logger, nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(RotatingFile(file)),
		zap.InfoLevel,
	)

	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	})), nil
}

// RotatingFile returns a size-rotated log file writer
func RotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}
}
