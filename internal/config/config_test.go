package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("IDENTITY_TIMEOUT", "")
	t.Setenv("AUTH_SERVICE_URL", "")

	cfg := Load()
	assert.Equal(t, ":8001", cfg.AuthAddr)
	assert.Equal(t, ":8000", cfg.CatalogAddr)
	assert.Equal(t, "http://localhost:8001", cfg.AuthServiceURL)
	assert.Equal(t, 3*time.Second, cfg.IdentityTimeout)
	assert.False(t, cfg.StrictIdentity)
	assert.True(t, cfg.UsesDefaultSecret())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("IDENTITY_TIMEOUT", "750ms")
	t.Setenv("STRICT_IDENTITY", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.Equal(t, 750*time.Millisecond, cfg.IdentityTimeout)
	assert.True(t, cfg.StrictIdentity)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst, "invalid values fall back to the default")
}
