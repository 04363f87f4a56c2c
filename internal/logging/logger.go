package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TINTO_LOG_LEVEL"

// logFile is the log location relative to the XDG state directory
const logFile = "tinto/tinto.log"

// DefaultLogPath returns $XDG_STATE_HOME/tinto/tinto.log, creating the
// parent directory if needed.
func DefaultLogPath() (string, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log path: %w", err)
	}
	return path, nil
}

// Initialize creates a new logger with the specified level, writing to path.
// If level is empty, it checks TINTO_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The dashboard owns the terminal, so logs always go to a file. An empty path
// falls back to stderr, which is only useful for non-interactive commands.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	// No color codes: the output is a file, not a terminal
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until Initialize is called
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogCommand logs the outcome of a device command
func LogCommand(kind, target string, duration time.Duration, err error) {
	fields := []zap.Field{
		zap.String("command", kind),
		zap.String("target", target),
		zap.Duration("duration", duration),
	}
	if err != nil {
		Warn("Device command failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Device command completed", fields...)
}

// LogRefresh logs an inventory refresh
func LogRefresh(lights, rooms, zones int, duration time.Duration, err error) {
	if err != nil {
		Warn("Inventory refresh failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	Debug("Inventory refreshed",
		zap.Int("lights", lights),
		zap.Int("rooms", rooms),
		zap.Int("zones", zones),
		zap.Duration("duration", duration),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
