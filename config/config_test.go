package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FORM_ENDPOINT", "")
	t.Setenv("VITE_CONT_CONN", "https://script.example.com/exec")
	t.Setenv("ALLOWED_ORIGINS", " https://pingslab.dev/ , ,https://www.pingslab.dev")
	t.Setenv("FORM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// An explicitly empty FORM_ENDPOINT wins over the legacy name.
	assert.Equal(t, "", cfg.FormEndpoint)
	assert.Equal(t, 10*time.Second, cfg.FormTimeout)
	assert.Equal(t, []string{"https://pingslab.dev", "https://www.pingslab.dev"}, cfg.AllowedOrigins)
}

func TestLoadConfigLegacyEndpoint(t *testing.T) {
	t.Setenv("FORM_ENDPOINT", "")
	require.NoError(t, os.Unsetenv("FORM_ENDPOINT"))
	t.Setenv("VITE_CONT_CONN", " https://script.example.com/exec ")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://script.example.com/exec", cfg.FormEndpoint)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
}
