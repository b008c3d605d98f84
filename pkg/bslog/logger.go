package bslog

import (
	"context"
	"log/slog"
	"os"
)

// Logger adds a FATAL level on top of slog.Logger
type Logger struct {
	*slog.Logger
}

func NewLogger(base *slog.Logger) *Logger {
	return &Logger{Logger: base}
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1)
}

func (l *Logger) FatalContext(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, LevelFatal, msg, args...)
	os.Exit(1)
}
