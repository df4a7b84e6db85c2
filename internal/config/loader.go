package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration in precedence order:
// 1. Default values
// 2. The YAML config file at path (optional; missing file is fine)
// 3. BOT_* environment variables (a .env file is read first when present)
func LoadConfig(path string) (*Config, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Running without a config file is supported; everything has a
		// default or comes from the environment.
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers a default for every known key so environment
// variables resolve even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_id", 0)

	v.SetDefault("messages.welcome",
		"👋 Hi! Forward me any message and I'll show what is known about its original sender. Use /help for the command list.")
	v.SetDefault("messages.help",
		"📖 Commands:\n"+
			"/start – short introduction\n"+
			"/help – this message\n"+
			"/myid – your own ID, name, username and language\n\n"+
			"Forward any message to me and I reply with the origin's metadata.")
	v.SetDefault("messages.not_authorized",
		"🚫 Access denied. Please contact the administrator.")
	v.SetDefault("messages.processing_error",
		"❌ An error occurred while processing your message. Please try again later.")

	// Cron expressions include the seconds field; this is the top of
	// every hour.
	v.SetDefault("scheduler.tasks.stats_report.enabled", true)
	v.SetDefault("scheduler.tasks.stats_report.schedule", "0 0 * * * *")
}
