package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/codewithnafira/forwardinfobot/internal/bot/handlers"
)

// PublishCommands pushes the visible command menu to Telegram via
// SetMyCommands. Only registered handlers carrying a description are
// published; admin-only commands stay out of the public menu by leaving
// their description empty.
func PublishCommands(ctx context.Context, b *tgbot.Bot, logger *slog.Logger, registeredHandlers map[string]handlers.RegisteredHandler) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "command_menu")

	commands := make([]models.BotCommand, 0, len(registeredHandlers))
	for name, regHandler := range registeredHandlers {
		if regHandler.Description == "" {
			continue
		}
		commands = append(commands, models.BotCommand{
			Command:     strings.TrimPrefix(name, "/"),
			Description: regHandler.Description,
		})
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Command < commands[j].Command })

	if len(commands) == 0 {
		log.Warn("No commands with descriptions to publish.")
		return nil
	}

	if _, err := b.SetMyCommands(ctx, &tgbot.SetMyCommandsParams{Commands: commands}); err != nil {
		log.Error("Failed to publish command menu", "error", err, "count", len(commands))
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Info("Published command menu", "count", len(commands))
	return nil
}
