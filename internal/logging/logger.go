// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the sqmatrix command.
// The matrix and rational packages never log; only the CLI does.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelOff silences the logger entirely.
const LevelOff = "off"

// Logger wraps zap.Logger with the operation tag used by the command.
type Logger struct {
	*zap.Logger
}

// Config selects level, encoder and sinks. Level is a zap level name or
// LevelOff. OutputPaths defaults to stderr so stdout carries only results.
type Config struct {
	Level       string
	Development bool
	OutputPaths []string
}

// New builds a logger from cfg. Development selects zap's console preset
// with callers; otherwise JSON lines without callers or stack traces.
func New(cfg Config) (*Logger, error) {
	if strings.EqualFold(cfg.Level, LevelOff) {
		return NewNop(), nil
	}
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := presetConfig(cfg.Development)
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Op returns a child logger tagged with the matrix operation being run.
func (l *Logger) Op(name string) *Logger {
	return &Logger{Logger: l.With(zap.String("op", name))}
}

func parseLevel(level string) (zapcore.Level, error) {
	return zapcore.ParseLevel(level)
}

func presetConfig(development bool) zap.Config {
	if development {
		c := zap.NewDevelopmentConfig()
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return c
	}

	c := zap.NewProductionConfig()
	c.Sampling = nil
	c.DisableCaller = true
	c.DisableStacktrace = true
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c
}
