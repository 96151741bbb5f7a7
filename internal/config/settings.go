package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// UnresolvedPolicy controls what happens when a ${VAR} placeholder in a
// model config file has no value in the environment.
type UnresolvedPolicy string

const (
	// UnresolvedKeep leaves the placeholder text as-is and logs a warning.
	UnresolvedKeep UnresolvedPolicy = "keep"
	// UnresolvedFail aborts the load with an error.
	UnresolvedFail UnresolvedPolicy = "fail"
)

// DuplicatePolicy controls how duplicate model_name entries in a model
// config file are handled.
type DuplicatePolicy string

const (
	// DuplicateReject fails the load when two records share a model_name.
	DuplicateReject DuplicatePolicy = "reject"
	// DuplicateSkip keeps the first record and drops later duplicates.
	DuplicateSkip DuplicatePolicy = "skip"
	// DuplicateLastWins keeps the last record for a given model_name.
	DuplicateLastWins DuplicatePolicy = "last-wins"
)

// Settings holds the runtime configuration for the CLI.
type Settings struct {
	BaseURL      string           `mapstructure:"base_url" yaml:"base_url"`
	Token        string           `mapstructure:"token" yaml:"token,omitempty"`
	Timeout      time.Duration    `mapstructure:"timeout" yaml:"timeout"`
	RateLimitRPS float64          `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps"`
	MaxRetries   int              `mapstructure:"max_retries" yaml:"max_retries"`
	Parallelism  int              `mapstructure:"parallelism" yaml:"parallelism"`
	OnUnresolved UnresolvedPolicy `mapstructure:"on_unresolved" yaml:"on_unresolved"`
	OnDuplicate  DuplicatePolicy  `mapstructure:"on_duplicate" yaml:"on_duplicate"`
	LogLevel     string           `mapstructure:"log_level" yaml:"log_level"`
}

// LoadSettings reads settings from the given file (when it exists),
// environment variables, and defaults, in increasing order of precedence
// for the environment over the file.
func LoadSettings(cfgFile string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("base_url", "http://localhost:5010")
	v.SetDefault("timeout", "30s")
	v.SetDefault("rate_limit_rps", 2.0)
	v.SetDefault("max_retries", 3)
	v.SetDefault("parallelism", 1)
	v.SetDefault("on_unresolved", string(UnresolvedKeep))
	v.SetDefault("on_duplicate", string(DuplicateReject))
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
	} else {
		v.SetConfigName("settings")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.modelctl/config")
	}

	v.SetEnvPrefix("MODELCTL")
	v.AutomaticEnv()

	_ = v.BindEnv("base_url", "MODELCTL_BASE_URL", "NEXENT_BASE_URL")
	_ = v.BindEnv("token", "MODELCTL_TOKEN", "NEXENT_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		// A missing settings file is fine; defaults and environment apply.
		_, cfgNotFound := err.(viper.ConfigFileNotFoundError)
		if !cfgNotFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks policy enum values and numeric bounds.
func (s *Settings) Validate() error {
	switch s.OnUnresolved {
	case UnresolvedKeep, UnresolvedFail:
	default:
		return fmt.Errorf("invalid on_unresolved policy %q (must be %q or %q)",
			s.OnUnresolved, UnresolvedKeep, UnresolvedFail)
	}

	switch s.OnDuplicate {
	case DuplicateReject, DuplicateSkip, DuplicateLastWins:
	default:
		return fmt.Errorf("invalid on_duplicate policy %q (must be %q, %q or %q)",
			s.OnDuplicate, DuplicateReject, DuplicateSkip, DuplicateLastWins)
	}

	if s.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", s.Parallelism)
	}

	if s.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", s.MaxRetries)
	}

	switch s.LogLevel {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn, error or fatal)", s.LogLevel)
	}

	return nil
}
