package config

import (
	"go.uber.org/zap"

	"github.com/t2t/waste-api/logging"
)

// setLogger builds the logger for env and installs it as the zap global
func setLogger(env, file string) (*zap.Logger, error) {
	logger, err := logging.New(env, file)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)
	return logger, nil
}
