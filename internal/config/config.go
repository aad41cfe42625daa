// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	Environment     string
	AllowedOrigins  string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver      string // "memory", "sqlite" or "postgres"
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

type AuthConfig struct {
	Mode          string // "jwt" or "static"
	JWTSecret     string
	TokenDuration time.Duration
	StaticUserID  string
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "sqlite"),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "taskboard"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:  getEnv("SQLITE_PATH", "tasks.db"),
			AutoMigrate: getEnvAsBool("AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			Mode:          getEnv("AUTH_MODE", "jwt"),
			JWTSecret:     getEnv("JWT_SECRET", "dev-access-secret-change-in-production"),
			TokenDuration: getEnvAsDuration("JWT_TOKEN_DURATION", 15*time.Minute),
			StaticUserID:  getEnv("AUTH_STATIC_USER_ID", "local-dev-user"),
		},
	}, nil
}

// ValidateConfig checks the loaded configuration for unusable combinations.
func (c *Config) ValidateConfig() error {
	switch c.Database.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want memory, sqlite or postgres)", c.Database.Driver)
	}

	switch c.Auth.Mode {
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set when AUTH_MODE=jwt")
		}
	case "static":
		if c.Auth.StaticUserID == "" {
			return fmt.Errorf("AUTH_STATIC_USER_ID must be set when AUTH_MODE=static")
		}
	default:
		return fmt.Errorf("unsupported AUTH_MODE %q (want jwt or static)", c.Auth.Mode)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
