package logger

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newHandler returns the slog handler for the given mode. Pretty output goes through
// charmbracelet/log, which colors levels when w is a terminal.
func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	if jsonMode {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.InfoLevel,
		ReportTimestamp: false,
	})
}
