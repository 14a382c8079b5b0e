// Package config loads transitrapd's configuration with viper, the same
// shape samirrijal-bilbopass's internal/pkg/config uses: defaults set on a
// fresh viper.Viper, an optional config file, then environment overrides,
// unmarshaled into a typed struct and validated. This is the Go-idiomatic
// analogue of original_source's bootstrap_config.rs + config.rs (clap +
// serde), generalized from "a CLI flag names a config file" to "viper reads
// a file plus environment", which is the pattern the retrieval pack's
// services actually use.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds transitrapd's full configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Transfers TransfersConfig `mapstructure:"transfers"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig configures the HTTP query facade (internal/httpapi).
type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	ReadTimeout  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeout int    `mapstructure:"write_timeout_seconds"`
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// TransfersConfig selects and configures the transfer provider (§4.C).
type TransfersConfig struct {
	// Provider is "crowfly", "fixed-matrix" or "none".
	Provider          string  `mapstructure:"provider"`
	WalkingSpeedKmh    float64 `mapstructure:"walking_speed_kmh"`
	MaxWalkingSeconds  int     `mapstructure:"max_walking_seconds"`
}

func (t TransfersConfig) MaxWalkingDuration() time.Duration {
	return time.Duration(t.MaxWalkingSeconds) * time.Second
}

// LoggingConfig configures internal/logging.New.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from ./config.yaml (or ./configs/config.yaml)
// if present, then applies TRANSITRAPD_-prefixed environment overrides
// (TRANSITRAPD_SERVER_ADDR overrides server.addr, etc), matching
// bilbopass's BILBOPASS_ env convention.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("transfers.provider", "crowfly")
	v.SetDefault("transfers.walking_speed_kmh", 10.0)
	v.SetDefault("transfers.max_walking_seconds", 15*60)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // absent config file is fine; defaults + env carry it

	v.SetEnvPrefix("TRANSITRAPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the rest of the service relies on being sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout_seconds must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout_seconds must be positive")
	}
	switch c.Transfers.Provider {
	case "crowfly", "fixed-matrix", "none":
	default:
		errs = append(errs, fmt.Sprintf("transfers.provider must be crowfly, fixed-matrix or none, got %q", c.Transfers.Provider))
	}
	if c.Transfers.Provider == "crowfly" {
		if c.Transfers.WalkingSpeedKmh <= 0 {
			errs = append(errs, "transfers.walking_speed_kmh must be positive")
		}
		if c.Transfers.MaxWalkingSeconds <= 0 {
			errs = append(errs, "transfers.max_walking_seconds must be positive")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
