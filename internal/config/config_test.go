package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_USER", "society")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "society")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "7")

	c := Load()
	assert.Equal(t, "dev", c.Env)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "3306", c.DBPort)
	assert.Equal(t, 15, c.AccessTTLMin)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, 24*time.Hour, c.ContextIdleTTL)
	assert.False(t, c.IsProd())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "off")
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "90s")
	assert.False(t, envBool("X_BOOL", true))
	assert.True(t, envBool("X_UNSET", true))
	assert.Equal(t, 3, envInt("X_INT", 3))
	assert.Equal(t, 90*time.Second, envDur("X_DUR", time.Second))
}

func TestRateLimitNormalization(t *testing.T) {
	c := RateLimitConfig{RefillInterval: 2 * time.Second}.normalized()
	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, 1, c.RefillTokens)
	assert.Equal(t, 10*time.Second, c.TTL)
}

func TestCacheMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head ,")
	c := LoadCacheConfig()
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, c.Methods)
}
