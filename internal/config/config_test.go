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

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)

	assert.Equal(t, "sha256", cfg.Security.PasswordDigest)

	assert.Contains(t, cfg.Google.Issuers, "https://accounts.google.com")
	assert.Equal(t, "https://www.googleapis.com/oauth2/v3/certs", cfg.Google.JWKSURL)
	assert.Equal(t, 5*time.Second, cfg.Google.VerifyTimeout)

	assert.True(t, cfg.Jobs.Enabled)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowCORSOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BRANDSCOPE_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}
