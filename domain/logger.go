package domain

import (
	"context"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging abstraction used across the engine.
// Implementations live in infrastructure/logging.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	WithFields(fields ...Field) Logger
}

type LoggerFactory interface {
	CreateLogger(component string) Logger
}

func NewField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
