package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment     string        `env:"ENVIRONMENT,default=dev"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=8080"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT,default=60s"`

	// database settings
	DatabaseURL     string `env:"DATABASE_URL,default=badger://data/badger"`
	TestDatabaseURL string `env:"TEST_DATABASE_URL,default=memory://"`
}

var validEnvs = map[string]bool{
	"dev":  true,
	"test": true,
	"prod": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"none":  true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *ServerEnvironment) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func validateConfig(cfg *ServerEnvironment) error {
	// port 0 asks the kernel for a free port
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 0 and 65535, got %d", cfg.Port)
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
