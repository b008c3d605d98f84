package bslog

import (
	"log/slog"

	"github.com/ucsb-cs156/crudapi/pkg/bslog/handlers"
)

const LevelFatal = slog.Level(12)

var CustomLevelNames = map[slog.Level]string{
	LevelFatal: "FATAL",
}

type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

func BaseReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		levelLabel, exists := CustomLevelNames[level]

		if !exists {
			levelLabel = level.String()
		}
		a.Value = slog.StringValue(levelLabel)
	}

	if a.Value.Kind() == slog.KindString && a.Value.String() == "" { // if empty value in KEY:VALUE pair
		return slog.Attr{}
	}

	return a
}

type handlerOption func(base slog.Handler) slog.Handler

func InDevMode() handlerOption {
	return func(base slog.Handler) slog.Handler {
		return handlers.NewDevModeHandler(base)
	}
}
