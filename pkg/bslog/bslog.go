package bslog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

func NewHandler(base slog.Handler, opts ...handlerOption) slog.Handler {
	for _, opt := range opts {
		base = opt(base)
	}

	return base
}

// Setup installs the process wide default logger for the given environment.
// Development environments get a text handler enriched with caller metadata,
// everything else logs JSON.
func Setup(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: BaseReplaceAttr,
	}

	var handler slog.Handler
	if IsDevelopment(env) {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = NewHandler(slog.NewTextHandler(w, opts), InDevMode())
	} else {
		handler = NewHandler(slog.NewJSONHandler(w, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func IsDevelopment(env string) bool {
	switch env {
	case "development", "dev", "DEV":
		return true
	}
	return false
}

func With(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}

func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	slog.DebugContext(ctx, msg, args...)
}

func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	slog.InfoContext(ctx, msg, args...)
}

func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	slog.WarnContext(ctx, msg, args...)
}

func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	slog.ErrorContext(ctx, msg, args...)
}

func Fatal(msg string, args ...any) {
	slog.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1)
}

func FatalContext(ctx context.Context, msg string, args ...any) {
	slog.Log(ctx, LevelFatal, msg, args...)
	os.Exit(1)
}
