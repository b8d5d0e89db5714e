// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Development gets a human-readable
// console handler; every other environment gets JSON lines.
func New(w io.Writer, env, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if env == "development" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			lvl = log.InfoLevel
		}
		handler := log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           lvl,
		})
		return slog.New(handler)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
