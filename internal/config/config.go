package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level" yaml:"log_level"`
	History  HistoryConfig `mapstructure:"history" yaml:"history"`
}

// HistoryConfig controls the optional record of rendered reports
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	DBPath  string `mapstructure:"db_path" yaml:"db_path"`
}

// FileName is the base name of the config file searched for by Load
const FileName = "nmaptable.yaml"

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads configuration from a YAML file layered over the defaults.
// If path is empty, searches for nmaptable.yaml in the current directory,
// ./configs and ~/.config/nmaptable/, falling back to defaults when none exists.
// NMAPTABLE_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("NMAPTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		// Use explicit path
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "nmaptable"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers DefaultConfig values so env overrides apply to every key
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.db_path", def.History.DBPath)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.History.Enabled && c.History.DBPath == "" {
		errs = append(errs, errors.New("history.db_path cannot be empty when history is enabled"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
