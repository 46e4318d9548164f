package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "WALLIE_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to output.
// If level is empty, it checks the WALLIE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// output is a zap sink path ("stderr", "stdout" or a file path); empty means stderr.
func Initialize(level string, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// Files get plain level names; escape codes make them unreadable.
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeForTUI initializes logging for the interactive screen. The TUI
// owns the terminal, so logs are only written when a file is configured;
// without one the logger stays silent regardless of level.
func InitializeForTUI(level string, file string) error {
	if file == "" {
		logger = zap.NewNop()
		return nil
	}
	return Initialize(level, file)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
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

// LogFetch logs a completed country directory fetch
func LogFetch(endpoint string, count int, elapsed time.Duration) {
	Info("Country directory loaded",
		zap.String("endpoint", endpoint),
		zap.Int("countries", count),
		zap.Duration("elapsed", elapsed),
	)
}

// LogFetchFailed logs a failed country directory fetch. The screen does not
// surface these failures, so this is the only trace they leave.
func LogFetchFailed(endpoint string, err error) {
	Warn("Country directory load failed",
		zap.String("endpoint", endpoint),
		zap.Error(err),
	)
}

// LogNavigation logs a screen transition
func LogNavigation(from string, to string) {
	Info("Navigation",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogScreenEvent logs a user interaction on a screen at debug level
func LogScreenEvent(screen string, event string, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.String("screen", screen),
		zap.String("event", event),
	}, fields...)
	Debug("Screen event", all...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
