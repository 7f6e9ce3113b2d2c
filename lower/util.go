package lower

import (
	"context"
	"log/slog"
)

// LevelTrace is the level every lowered instruction is logged at.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
