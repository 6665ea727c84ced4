package config

// Config represents the complete configuration structure
type Config struct {
	OpenCart OpenCartConfig `mapstructure:"opencart"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// OpenCartConfig holds Product API connection details
type OpenCartConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	// Timeout is the per-request timeout in seconds.
	Timeout    int    `mapstructure:"timeout"`
	DecodeHTML bool   `mapstructure:"decode_html"`
	UserAgent  string `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
