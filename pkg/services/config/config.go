package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/errs"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	GitHub   GitHubConfig `mapstructure:"github"`
	Cache    CacheConfig  `mapstructure:"cache"`
	LogLevel string       `mapstructure:"log_level"`
}

// ServerConfig defines listen address settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// GitHubConfig defines upstream API access. Token and Username are
// required; everything else has a default.
type GitHubConfig struct {
	Token    string        `mapstructure:"token"`
	Username string        `mapstructure:"username"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CacheConfig defines the rendered-chart cache.
type CacheConfig struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// Load reads configuration from an optional file plus GHCM_* environment
// variables, applies defaults, and validates required settings.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	v.SetEnvPrefix("GHCM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Required settings default to empty so viper picks them up from the
	// environment; validate rejects them when still unset.
	v.SetDefault("github.token", "")
	v.SetDefault("github.username", "")
	v.SetDefault("github.endpoint", "https://api.github.com/graphql")
	v.SetDefault("github.timeout", 30*time.Second)

	v.SetDefault("cache.size", 128)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	if cfg.GitHub.Token == "" {
		return errs.NewConfigurationError("missing required configuration: github token (GHCM_GITHUB_TOKEN)")
	}
	if cfg.GitHub.Username == "" {
		return errs.NewConfigurationError("missing required configuration: github username (GHCM_GITHUB_USERNAME)")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Cache.Size <= 0 {
		return fmt.Errorf("invalid cache size: %d", cfg.Cache.Size)
	}
	return nil
}
