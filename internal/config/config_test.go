// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "jwt", cfg.Auth.Mode)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("AUTH_MODE", "static")
	t.Setenv("AUTH_STATIC_USER_ID", "ci-user")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "static", cfg.Auth.Mode)
	assert.Equal(t, "ci-user", cfg.Auth.StaticUserID)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	require.NoError(t, cfg.ValidateConfig())
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "memory driver", mutate: func(c *Config) { c.Database.Driver = "memory" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: true},
		{name: "unknown auth mode", mutate: func(c *Config) { c.Auth.Mode = "basic" }, wantErr: true},
		{name: "jwt without secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{
			name: "static without user id",
			mutate: func(c *Config) {
				c.Auth.Mode = "static"
				c.Auth.StaticUserID = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.ValidateConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
