package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// To-do list
	Session      SessionConfig
	Todo         TodoConfig
	Notification NotificationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxClients     int
}

type SessionConfig struct {
	CookieName   string
	SecureCookie bool
	TTL          time.Duration
	MaxSessions  int
}

type TodoConfig struct {
	// ConfirmDelete makes the page ask before deleting a task.
	ConfirmDelete bool
	MaxNameLength int
}

type NotificationConfig struct {
	MaxQueued int
}

// Load loads configuration using Viper.
// The file config.yaml is searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	// To-do list
	cfg.Session.CookieName = v.GetString("session.cookie_name")
	cfg.Session.SecureCookie = v.GetBool("session.secure_cookie")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Todo.ConfirmDelete = v.GetBool("todo.confirm_delete")
	cfg.Todo.MaxNameLength = v.GetInt("todo.max_name_length")
	cfg.Notification.MaxQueued = v.GetInt("notification.max_queued")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 1000)

	v.SetDefault("session.cookie_name", "todo_session")
	v.SetDefault("session.secure_cookie", false)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("todo.confirm_delete", true)
	v.SetDefault("todo.max_name_length", 255)
	v.SetDefault("notification.max_queued", 20)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	if c.Todo.MaxNameLength < 0 {
		return fmt.Errorf("todo.max_name_length must not be negative")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
