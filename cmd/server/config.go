package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/youruser/opdeck/internal/store"
)

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = 8080
	defaultDataDir       = "data"
	defaultDatabaseURL   = "data/opdeck.db"
	defaultHandSize      = 8
	defaultHandTTL       = 30 * time.Minute
	defaultPublicBaseURL = "http://localhost:8080"
)

type appConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	DataDir       string        `mapstructure:"data-dir"`
	DatabaseType  string        `mapstructure:"database-type"`
	DatabaseURL   string        `mapstructure:"database-url"`
	RedisAddr     string        `mapstructure:"redis-addr"`
	RedisPassword string        `mapstructure:"redis-password"`
	HandSize      int           `mapstructure:"hand-size"`
	HandTTL       time.Duration `mapstructure:"hand-ttl"`
	EventBonus    bool          `mapstructure:"event-bonus"`
	PublicBaseURL string        `mapstructure:"public-base-url"`
	LogLevel      string        `mapstructure:"log-level"`
	LogFormat     string        `mapstructure:"log-format"`
	ConfigPath    string        `mapstructure:"-"` // not from config file
}

// Addr is the listen address of the HTTP server.
func (c appConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// loadConfig reads defaults, then the optional config file, then OPDECK_*
// environment variables.
func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("OPDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("data-dir", defaultDataDir)
	v.SetDefault("database-type", store.DriverSQLite)
	v.SetDefault("database-url", defaultDatabaseURL)
	v.SetDefault("redis-addr", "")
	v.SetDefault("redis-password", "")
	v.SetDefault("hand-size", defaultHandSize)
	v.SetDefault("hand-ttl", defaultHandTTL)
	v.SetDefault("event-bonus", true)
	v.SetDefault("public-base-url", defaultPublicBaseURL)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
				return cfg, err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.DatabaseType != store.DriverSQLite && cfg.DatabaseType != store.DriverPostgres {
		return cfg, fmt.Errorf("invalid database-type %q: want sqlite or postgres", cfg.DatabaseType)
	}
	if cfg.HandSize < 1 {
		return cfg, fmt.Errorf("invalid hand-size: %d", cfg.HandSize)
	}
	if cfg.HandTTL <= 0 {
		return cfg, fmt.Errorf("invalid hand-ttl: %s", cfg.HandTTL)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log-level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: want text or json", format)
	}
}
