package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

// NewForwardHandler creates the catch-all handler that classifies the
// forward origin of an incoming message and replies with the origin's
// metadata (or the fixed not-identifiable explanation).
func NewForwardHandler(deps HandlerDeps) bot.HandlerFunc {
	return forwardHandler{deps}.Handle
}

type forwardHandler struct {
	deps HandlerDeps
}

// Handle never lets a classification failure escape: any panic while
// reading message fields is recovered here, logged, and turned into the
// configured generic error reply so the update loop keeps running.
func (h forwardHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "forward")

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		log.ErrorContext(ctx, "Recovered from panic while handling forward", "panic", r, "update_id", update.ID)
		if update.Message == nil {
			return
		}
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   h.deps.Config.Messages.ProcessingError,
		})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send processing error reply", "error", err, "chat_id", update.Message.Chat.ID)
		}
	}()

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.DebugContext(ctx, "Ignoring update with nil message or sender", "update_id", update.ID)
		return
	}

	origin := forward.FromMessage(msg)
	text, mode := forward.Reply(origin, time.Now())
	h.deps.Stats.CountReply(origin.Kind)

	log.InfoContext(ctx, "Classified message", "chat_id", msg.Chat.ID, "kind", origin.Kind.String())

	params := &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: text}
	if mode != "" {
		params.ParseMode = mode
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		log.ErrorContext(ctx, "Failed to send classification reply", "error", err, "chat_id", msg.Chat.ID, "kind", origin.Kind.String())
	}
}
