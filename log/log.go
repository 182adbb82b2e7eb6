// Package log builds the zap loggers used by cachers and the demo.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages, such as every cache hit and miss.
	LogDebug LogLevel = "debug"
)

var ErrUnknownLevel = fmt.Errorf("unknown log level")

// ParseLevel validates s as a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch l := LogLevel(s); l {
	case LogInfo, LogWarn, LogError, LogDebug:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// ZapLevel maps the level onto zap. Unknown levels map to info.
func (l LogLevel) ZapLevel() zapcore.Level {
	switch l {
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	case LogDebug:
		return zap.DebugLevel
	default:
		return zap.InfoLevel
	}
}

// NewConsoleLogger returns a human-readable logger writing to w.
func NewConsoleLogger(w io.Writer, level LogLevel) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level.ZapLevel(),
	)
	return zap.New(consoleCore)
}
