package infrastructure

import (
	"log/slog"

	"coolassistant.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog. The zero value
// writes through slog's default logger.
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: logger}
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return slog.Default()
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, toArgs(fields)...)
}

// With returns a logger that adds the given fields to every entry
func (l *SlogLoggerAdapter) With(fields ...ports.Field) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l.target().With(toArgs(fields)...)}
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			args = append(args, field.Key, err.Error())
			continue
		}
		args = append(args, field.Key, field.Value)
	}
	return args
}

// TeeLogger writes every entry to all of its loggers
type TeeLogger []ports.Logger

func (t TeeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Debug(msg, fields...)
	}
}

func (t TeeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Info(msg, fields...)
	}
}

func (t TeeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Warn(msg, fields...)
	}
}

func (t TeeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Error(msg, fields...)
	}
}
