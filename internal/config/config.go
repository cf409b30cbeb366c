package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrMissingBackendURL           = errors.New("backend base url is not configured")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	HTTP     HTTP     `mapstructure:"http"`     // page server section
	Backend  Backend  `mapstructure:"backend"`  // question backend section
	Telegram Telegram `mapstructure:"telegram"` // optional chat delivery section
}

// HTTP contains page server parameters.
type HTTP struct {
	Addr            string        `mapstructure:"addr"`             // listen address
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`     // maximum duration for reading a request
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`    // maximum duration before timing out writes
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // grace period for in-flight requests
}

// Backend describes how to reach the question backend.
type Backend struct {
	BaseURL   string        `mapstructure:"base_url"`   // scheme://host:port of the backend
	Timeout   time.Duration `mapstructure:"timeout"`    // per-request timeout
	UserAgent string        `mapstructure:"user_agent"` // sent with every backend request
}

// Telegram contains chat delivery parameters.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	APIToken string `mapstructure:"-"` // Telegram API token loaded from environment
	Debug    bool   `mapstructure:"debug"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(paths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":2000")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("backend.base_url", "http://localhost:1000")
	v.SetDefault("backend.timeout", "5s")
	v.SetDefault("backend.user_agent", "question-desk")
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.debug", false)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("backend.base_url", "BACKEND_URL")
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

	cfg.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Backend.BaseURL), "/")
	if cfg.Backend.BaseURL == "" {
		return nil, ErrMissingBackendURL
	}

	// The token is only required when the chat delivery is switched on.
	cfg.Telegram.APIToken = v.GetString("telegram_api_token")
	if cfg.Telegram.Enabled && cfg.Telegram.APIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
