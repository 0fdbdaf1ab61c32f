package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Transport values accepted by the MCP server binary.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the DigiKey API credentials shared by every binary.
type Config struct {
	ClientID     string
	ClientSecret string
	UseSandbox   bool
}

// ServerConfig extends Config with the MCP server settings.
type ServerConfig struct {
	Config
	Transport string
	Port      string
}

// Load reads API credentials from the environment.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		UseSandbox:   strings.EqualFold(os.Getenv("USE_SANDBOX"), "true"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadServer reads API credentials plus the MCP transport settings.
func LoadServer() (*ServerConfig, error) {
	creds, err := Load()
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		Config:    *creds,
		Transport: getEnv("MCP_TRANSPORT", TransportStdio),
		Port:      getEnv("MCP_PORT", "8000"),
	}

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return nil, fmt.Errorf("MCP_TRANSPORT must be %q or %q", TransportStdio, TransportHTTP)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
