// Package logging configures log/slog the way the teacher's
// util.InitSlog does for its CLI tools: a LOG_LEVEL environment variable
// picks the handler level, and everything else uses slog's package-level
// default logger. The query builder and compiler are otherwise silent;
// only the CLI layer and, at slog.Debug, a compiler error path log
// anything at all.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures slog's default logger from LOG_LEVEL. Supported levels:
// debug, info, warn, error. Unset or unrecognized falls back to info.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return
	}

	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// QueryShapeFailure logs a compiler-surfaced QueryShape error at Debug,
// the verbosity level the teacher reserves for diagnostic detail that a
// normal run never needs to see.
func QueryShapeFailure(op string, err error) {
	slog.Debug("query builder rejected invalid shape", "op", op, "error", err)
}
