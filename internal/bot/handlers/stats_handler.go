package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

// NewStatsHandler returns a handler for the admin-only /stats command,
// reporting uptime and the in-memory counters.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /stats command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)
	h.deps.Stats.CountCommand("stats")

	snap := h.deps.Stats.Snapshot(time.Now())

	var sb strings.Builder
	sb.WriteString("📊 <b>Bot Stats</b>\n")
	fmt.Fprintf(&sb, "├ Started: %s\n", humanize.Time(snap.Start))
	fmt.Fprintf(&sb, "├ Updates seen: %d\n", snap.Updates)

	kinds := []forward.Kind{forward.KindUser, forward.KindChat, forward.KindHidden, forward.KindNone}
	for _, k := range kinds {
		if n, ok := snap.Replies[k]; ok {
			fmt.Fprintf(&sb, "├ Replies (%s): %d\n", k, n)
		}
	}

	names := make([]string, 0, len(snap.Commands))
	for name := range snap.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "├ /%s: %d\n", name, snap.Commands[name])
	}
	fmt.Fprintf(&sb, "└ Uptime: %s", snap.Uptime.Round(time.Second))

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      sb.String(),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send stats reply", "error", err, "chat_id", update.Message.Chat.ID)
	}
}
