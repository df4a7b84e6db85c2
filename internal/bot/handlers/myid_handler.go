package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/codewithnafira/forwardinfobot/internal/forward"
)

// NewMyIDHandler returns a handler for the /myid command. The reply is
// always derived from the invoking user, never from forward metadata.
func NewMyIDHandler(deps HandlerDeps) bot.HandlerFunc {
	return myIDHandler{deps}.Handle
}

type myIDHandler struct {
	deps HandlerDeps
}

func (h myIDHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "myid")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "MyID handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /myid command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)
	h.deps.Stats.CountCommand("myid")

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      forward.SelfReply(update.Message.From),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send myid reply", "error", err, "chat_id", update.Message.Chat.ID)
	}
}
