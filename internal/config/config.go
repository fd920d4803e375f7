// Package config centralizes application configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Defaults live in NewDefaultConfig as a plain struct literal. Load layers an
// optional config file and RIDESHARE_* environment variables on top of those
// defaults using "github.com/spf13/viper". Everything downstream receives the
// typed *Config, never viper itself, so packages stay testable without
// touching the environment.
//
// Fare tariffs are deliberately absent: they are fixed constants in the
// entities package.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// RIDESHARE_SERVER_PORT or RIDESHARE_LOG_LEVEL.
const EnvPrefix = "RIDESHARE"

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings. Only cmd/server reads it.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig selects the logrus level ("debug", "info", ...) and formatter
// ("text" or "json").
type LogConfig struct {
	Level  string
	Format string
}

func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns the defaults overlaid with ./config/config.yaml (if present)
// and RIDESHARE_* environment variables. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	defaults := NewDefaultConfig()

	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}
