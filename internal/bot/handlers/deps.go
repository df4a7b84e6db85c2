package handlers

import (
	"log/slog"

	"github.com/codewithnafira/forwardinfobot/internal/config"
	"github.com/codewithnafira/forwardinfobot/internal/stats"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Stats  *stats.Recorder
}
