package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.HTTPPort)
	require.Equal(t, "8081", cfg.Server.WSPort)
	require.Equal(t, BroadcastLocal, cfg.Broadcast.Driver)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 1024, cfg.WebSocket.ReadBufferSize)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{HTTPPort: "8080", WSPort: "8081"},
			Database:  DatabaseConfig{URL: "postgres://localhost/bidding"},
			Auth:      AuthConfig{JWTSecret: "secret"},
			Redis:     RedisConfig{Addr: "localhost:6379"},
			Broadcast: BroadcastConfig{Driver: BroadcastLocal},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing http port", mutate: func(c *Config) { c.Server.HTTPPort = "" }},
		{name: "missing ws port", mutate: func(c *Config) { c.Server.WSPort = "" }},
		{name: "missing database url", mutate: func(c *Config) { c.Database.URL = "" }},
		{name: "missing jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }},
		{name: "missing redis addr", mutate: func(c *Config) { c.Redis.Addr = "" }},
		{name: "unknown broadcast driver", mutate: func(c *Config) { c.Broadcast.Driver = "kafka" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
