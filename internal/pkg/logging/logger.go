// Package logging builds the service's zap logger and carries request-scoped
// loggers through context.Context.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFileEnv names an optional file that receives a copy of every entry.
const LogFileEnv = "LOG_FILE"

// NewLogger returns a JSON logger writing to stdout, tagged with service and env.
func NewLogger(service, env string) (*zap.Logger, error) {
	return build(service, env, os.Getenv(LogFileEnv))
}

func build(service, env, logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if env == "development" || env == "local" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if logFile != "" {
		if err := touch(logFile); err != nil {
			return nil, fmt.Errorf("prepare log file %s: %w", logFile, err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, logFile)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.InitialFields = map[string]any{
		"service": service,
		"env":     env,
	}

	return cfg.Build()
}

// Component tags a logger with the subsystem that owns it.
func Component(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		logger = zap.L()
	}
	return logger.With(zap.String("component", name))
}

func touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
