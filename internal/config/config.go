// Package config provides configuration management for handlescout using Viper.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int           `mapstructure:"version" yaml:"version"`
	HTTP    HTTPConfig    `mapstructure:"http" yaml:"http"`
	Pacing  PacingConfig  `mapstructure:"pacing" yaml:"pacing"`
	Retry   RetryConfig   `mapstructure:"retry" yaml:"retry"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Resolve ResolveConfig `mapstructure:"resolve" yaml:"resolve"`
}

// HTTPConfig controls the outbound HTTP transport.
type HTTPConfig struct {
	// Timeout bounds each individual probe request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`

	// UserAgent and AcceptLanguage form the request header profile.
	UserAgent      string `mapstructure:"user_agent" yaml:"user_agent"`
	AcceptLanguage string `mapstructure:"accept_language" yaml:"accept_language"`
}

// PacingConfig controls the courtesy delay before each probe request.
type PacingConfig struct {
	Min time.Duration `mapstructure:"min" yaml:"min"`
	Max time.Duration `mapstructure:"max" yaml:"max"`
}

// RetryConfig controls the shared backoff policy for transient responses.
type RetryConfig struct {
	// MaxAttempts bounds the request count within one probe, including
	// the initial attempt.
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`

	// InitialInterval is the first backoff delay; subsequent delays grow
	// exponentially.
	InitialInterval time.Duration `mapstructure:"initial_interval" yaml:"initial_interval"`
}

// SearchConfig controls the find-available-handle loop.
type SearchConfig struct {
	// MaxAttempts bounds the number of candidates tried per search.
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`

	// Platforms is the reliably-checkable subset used by the search loop.
	Platforms []string `mapstructure:"platforms" yaml:"platforms"`
}

// ResolveConfig controls multi-platform resolution.
type ResolveConfig struct {
	// Concurrency bounds the worker pool used by ResolveMany.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`

	// Timeout is the global budget for one ResolveMany call.
	// Zero means no budget.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("HANDLESCOUT")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("http.timeout", def.HTTP.Timeout)
	viper.SetDefault("http.insecure_skip_verify", def.HTTP.InsecureSkipVerify)
	viper.SetDefault("http.user_agent", def.HTTP.UserAgent)
	viper.SetDefault("http.accept_language", def.HTTP.AcceptLanguage)
	viper.SetDefault("pacing.min", def.Pacing.Min)
	viper.SetDefault("pacing.max", def.Pacing.Max)
	viper.SetDefault("retry.max_attempts", def.Retry.MaxAttempts)
	viper.SetDefault("retry.initial_interval", def.Retry.InitialInterval)
	viper.SetDefault("search.max_attempts", def.Search.MaxAttempts)
	viper.SetDefault("search.platforms", def.Search.Platforms)
	viper.SetDefault("resolve.concurrency", def.Resolve.Concurrency)
	viper.SetDefault("resolve.timeout", def.Resolve.Timeout)
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		Version: 1,
		HTTP: HTTPConfig{
			Timeout:        15 * time.Second,
			UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			AcceptLanguage: "en-US,en;q=0.9",
		},
		Pacing: PacingConfig{
			Min: 1 * time.Second,
			Max: 3 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 1 * time.Second,
		},
		Search: SearchConfig{
			MaxAttempts: 10,
			Platforms:   []string{"github"},
		},
		Resolve: ResolveConfig{
			Concurrency: 2,
			Timeout:     2 * time.Minute,
		},
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
