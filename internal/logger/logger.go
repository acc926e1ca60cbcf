package logger

import (
	"io"
	"log/slog"
)

// New returns a structured JSON logger writing to w. Level should be a valid
// slog level string: DEBUG, INFO, WARN, ERROR. Unrecognized values default to
// INFO. The logger is passed explicitly into every component; nothing in this
// module relies on the process-wide default logger.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
