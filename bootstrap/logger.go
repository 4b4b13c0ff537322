// Package bootstrap turns a config.Config into the live dependencies shared by
// the server and the operator CLI.
package bootstrap

import (
	"io"
	"log/slog"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
)

// NewLogger logs JSON in prod and human readable text everywhere else.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
