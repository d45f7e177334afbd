package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Limits LimitsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// CORSConfig lists the front-end origins allowed to call the API
type CORSConfig struct {
	AllowOrigins []string
}

// LimitsConfig bounds request sizes
type LimitsConfig struct {
	MaxTextLength int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    getEnv("HOST", "0.0.0.0"),
			Port:    getEnvInt("PORT", 8080),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		},
		Limits: LimitsConfig{
			MaxTextLength: getEnvInt("MAX_TEXT_LENGTH", 10000),
		},
	}
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`
Server: %s (gin mode %s)
CORS origins: %v
Max text length: %d`,
		c.Addr(), c.Server.GinMode,
		c.CORS.AllowOrigins,
		c.Limits.MaxTextLength,
	)
}
