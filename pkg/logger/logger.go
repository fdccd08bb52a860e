package logger

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the zap encoder.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

var log atomic.Pointer[zap.Logger]

func init() {
	log.Store(getLogger())
}

func getLogger() *zap.Logger {
	l, err := zap.NewDevelopment()

	if err != nil {
		panic(fmt.Sprintf("unable to build logger: %v", err))
	}
	return l
}

// New builds a logger for the given level ("debug", "info", ...) and format.
// Console output uses the development encoder, JSON the production one.
func New(level string, format Format) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole, "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logger: invalid format %q: must be %q or %q", format, FormatJSON, FormatConsole)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// Set replaces the package logger. It is safe to call while other
// goroutines are logging.
func Set(l *zap.Logger) {
	if l != nil {
		log.Store(l)
	}
}

func Get() *zap.Logger {
	return log.Load()
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}
