package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string `mapstructure:"env"`    // current application environment (local, dev, prod etc)
	TelegramToken string `mapstructure:"-"`      // Telegram bot token loaded from environment
	GeminiAPIKey  string `mapstructure:"-"`      // Gemini API key loaded from environment
	Gemini        Gemini `mapstructure:"gemini"` // generation-related configuration section
}

// Gemini contains text-generation configuration parameters.
type Gemini struct {
	Model   string        `mapstructure:"model"`   // Gemini model used for problem generation
	Timeout time.Duration `mapstructure:"timeout"` // upper bound on a single generation call
}

// Load reads configuration from config files and environment variables.
// Both secrets are required; the process must not start without them.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.timeout", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_token", "TELEGRAM_TOKEN")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramToken = v.GetString("telegram_token")
	if cfg.TelegramToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.GeminiAPIKey = v.GetString("gemini_api_key")
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
