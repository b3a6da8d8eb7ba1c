package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "TOKEN_STORE", "TOKEN_TTL_HOURS", "BCRYPT_COST", "RATE_LIMIT_RPS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, TokenStorePostgres, cfg.TokenStore)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.TokenTTL())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/femaqua")
	t.Setenv("TOKEN_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TOKEN_TTL_HOURS", "24")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "0.5")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, TokenStoreRedis, cfg.TokenStore)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 0.5, cfg.RateLimitAuthRPS)
	require.NoError(t, cfg.Validate())
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "fast")

	cfg := Load()

	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 2.0, cfg.RateLimitAuthRPS)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabaseURL: "postgres://localhost/femaqua",
			TokenStore:  TokenStorePostgres,
			BcryptCost:  bcrypt.DefaultCost,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "redis without url", mutate: func(c *Config) { c.TokenStore = TokenStoreRedis }, wantErr: "REDIS_URL"},
		{name: "unknown store", mutate: func(c *Config) { c.TokenStore = "memcached" }, wantErr: "TOKEN_STORE"},
		{name: "bcrypt cost too low", mutate: func(c *Config) { c.BcryptCost = 1 }, wantErr: "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
