// Package config loads the server configuration from an optional file and
// LANDING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "LANDING"

type Config struct {
	Addr            string        `mapstructure:"addr"`
	LogLevel        string        `mapstructure:"log_level"`
	Dev             bool          `mapstructure:"dev"`
	ViewTTL         time.Duration `mapstructure:"view_ttl"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	HTMXSrc         string        `mapstructure:"htmx_src"`
	TailwindSrc     string        `mapstructure:"tailwind_src"`
}

var defaults = map[string]any{
	"addr":             ":8080",
	"log_level":        "info",
	"dev":              false,
	"view_ttl":         30 * time.Minute,
	"shutdown_timeout": 10 * time.Second,
	"htmx_src":         "https://unpkg.com/htmx.org@2.0.4",
	"tailwind_src":     "https://cdn.tailwindcss.com",
}

// Load reads filePath when it is set and exists, then applies LANDING_*
// environment variables over it. An empty filePath loads defaults and
// environment only.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must be set"))
	}
	if c.ViewTTL <= 0 {
		errs = append(errs, fmt.Errorf("view_ttl must be positive, got %s", c.ViewTTL))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
