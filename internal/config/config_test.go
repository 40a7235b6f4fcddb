package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWithoutEnv(t *testing.T) {
	t.Setenv("USERDASH_ENDPOINT", "")
	t.Setenv("USERDASH_TIMEOUT", "")
	t.Setenv("USERDASH_COUNTER", "")
	t.Setenv("USERDASH_LOG", "")

	cfg := Default()
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.InitialCounter)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Verbose)
}

func TestDefaultEnvOverrides(t *testing.T) {
	t.Setenv("USERDASH_ENDPOINT", "http://localhost:9999/users")
	t.Setenv("USERDASH_TIMEOUT", "3s")
	t.Setenv("USERDASH_COUNTER", "5")
	t.Setenv("USERDASH_LOG", "/tmp/userdash.log")

	cfg := Default()
	assert.Equal(t, "http://localhost:9999/users", cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.InitialCounter)
	assert.Equal(t, "/tmp/userdash.log", cfg.LogFile)
}

func TestDefaultIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("USERDASH_TIMEOUT", "soon")
	t.Setenv("USERDASH_COUNTER", "many")

	cfg := Default()
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.InitialCounter)
}
