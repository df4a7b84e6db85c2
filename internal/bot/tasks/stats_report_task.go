package tasks

import (
	"context"
	"time"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

// newStatsReportTask creates the scheduled task that logs a snapshot of the
// runtime counters. Purely observational; the counters are not reset.
func newStatsReportTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "stats_report")

	return func(ctx context.Context) error {
		snap := deps.Stats.Snapshot(time.Now())

		log.InfoContext(ctx, "Runtime stats report",
			"uptime", snap.Uptime.Round(time.Second),
			"updates", snap.Updates,
			"replies_user", snap.Replies[forward.KindUser],
			"replies_chat", snap.Replies[forward.KindChat],
			"replies_hidden", snap.Replies[forward.KindHidden],
			"replies_none", snap.Replies[forward.KindNone],
		)
		return nil
	}
}
