// Package tasks implements scheduled tasks for the forward info bot,
// including task definitions, dependencies, and registration.
package tasks

import (
	"log/slog"

	"github.com/codewithnafira/forwardinfobot/internal/config"
	"github.com/codewithnafira/forwardinfobot/internal/stats"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Stats  *stats.Recorder
}
