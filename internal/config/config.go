package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"min=1s"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=1s"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,min=1,max=65535"`
	Name     string `koanf:"name" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

type LoggingConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// envKeys maps the recognised environment variables onto koanf paths.
// Anything not listed here is ignored.
var envKeys = map[string]string{
	"APP_ENV":              "env",
	"SERVER_PORT":          "server.port",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",
	"DB_HOST":              "database.host",
	"DB_PORT":              "database.port",
	"DB_NAME":              "database.name",
	"DB_USER":              "database.user",
	"DB_PASS":              "database.password",
	"DB_SSLMODE":           "database.ssl_mode",
	"LOG_LEVEL":            "logging.level",
}

var defaults = map[string]any{
	"env":                  "development",
	"server.port":          "8080",
	"server.read_timeout":  "10s",
	"server.write_timeout": "10s",
	"database.host":        "localhost",
	"database.port":        5432,
	"database.name":        "store",
	"database.user":        "admin",
	"database.password":    "admin",
	"database.ssl_mode":    "disable",
	"logging.level":        "info",
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	k := koanf.New(".")
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, errors.Wrapf(err, "failed to set default %s", key)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// DSN returns the postgres URL for the configured database.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsLocal() bool {
	return c.Env == "development" || c.Env == "local"
}
