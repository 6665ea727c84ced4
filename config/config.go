package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. A .env file in the
// working directory is folded into the environment first, and OPENCART_URL /
// OPENCART_API_KEY can stand in for a config file entirely.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".opencartctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/opencartctl/")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Without an explicit path, a missing file is fine when the
		// environment supplies the connection values; validation below
		// decides whether enough was provided.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Connection defaults; url and api_key default to empty so the keys are
	// known to the environment override machinery.
	v.SetDefault("opencart.url", "")
	v.SetDefault("opencart.api_key", "")
	v.SetDefault("opencart.timeout", 30)
	v.SetDefault("opencart.decode_html", true)
	v.SetDefault("opencart.user_agent", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.OpenCart.URL == "" {
		return fmt.Errorf("opencart.url is required")
	}

	if cfg.OpenCart.APIKey == "" || cfg.OpenCart.APIKey == "your-api-key-here" {
		return fmt.Errorf("opencart.api_key must be set to a valid API key")
	}

	if cfg.OpenCart.Timeout <= 0 {
		return fmt.Errorf("opencart.timeout must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
