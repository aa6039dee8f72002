// Package logger builds the zap loggers used across the engine. The
// engine components accept a *zap.Logger for data-quality diagnostics
// (unknown units, unmatched catalog names, unparseable portions) and
// default to the no-op logger when given nil.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at Warn level, or Debug when verbose.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
