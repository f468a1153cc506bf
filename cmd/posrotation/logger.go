// Copyright IBM Corp. All Rights Reserved.
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a logger at the given level writing to the given path.
// An empty path with discard set yields a logger that drops everything.
func newLogger(level string, path string, discard bool) (*zap.Logger, error) {
	if path == "" && discard {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %s: %v", level, err)
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(lvl)
	logConfig.DisableStacktrace = true
	if path != "" {
		logConfig.OutputPaths = []string{path}
		logConfig.ErrorOutputPaths = []string{path}
	}

	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed building logger: %v", err)
	}

	return logger, nil
}
