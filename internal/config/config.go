// Package config provides configuration loading, validation, and management
// for the forward info bot. It handles reading from YAML files, BOT_*
// environment variables, setting default values, and validating parameters.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
)

// Config defines the application configuration parameters for all components:
// logging, the Telegram connection, user-facing message texts, and the
// scheduler task table.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls log verbosity and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credentials and runtime identity.
type TelegramConfig struct {
	// Token is the bot access token. Required; startup fails without it.
	Token string `mapstructure:"token" validate:"required"`

	// AdminUserID gates admin-only commands. Zero disables them entirely.
	AdminUserID int64 `mapstructure:"admin_id"`

	// BotInfo is filled at startup from GetMe, not from configuration.
	BotInfo *models.User `mapstructure:"-"`
}

// MessagesConfig holds the user-facing texts that are configurable. The
// forward classification replies themselves are fixed in code.
type MessagesConfig struct {
	Welcome         string `mapstructure:"welcome" validate:"required"`
	Help            string `mapstructure:"help" validate:"required"`
	NotAuthorized   string `mapstructure:"not_authorized" validate:"required"`
	ProcessingError string `mapstructure:"processing_error" validate:"required"`
}

// SchedulerConfig maps task names to their schedule entries. Task names must
// match the keys registered by the tasks package.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a single scheduled task and sets its cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Validate checks the configuration against the struct validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
