package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := LoadConfig()

	require.Equal(t, 24*time.Hour, cfg.JWTTokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("AUTH_RATE_LIMIT", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := LoadConfig()

	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, 30*time.Minute, cfg.JWTTokenTTL)
	require.Equal(t, 3, cfg.AuthRateLimit)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_JWTSecretHasNoDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	require.Empty(t, cfg.JWTSecret)
	require.ErrorIs(t, cfg.Validate(), ErrJWTSecretMissing)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{JWTSecret: "short-secret"}
	require.ErrorIs(t, cfg.Validate(), ErrJWTSecretTooShort)

	cfg.JWTSecret = strings.Repeat("k", MinJWTSecretLength)
	require.NoError(t, cfg.Validate())
}

func TestGetEnvDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	require.Equal(t, 5*time.Second, getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))

	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	require.Equal(t, 5*time.Second, getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
}

func TestParseTrustedProxies(t *testing.T) {
	require.Nil(t, parseTrustedProxies(""))
	require.Nil(t, parseTrustedProxies(" , "))
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, parseTrustedProxies("10.0.0.1, ,10.0.0.2"))
}
