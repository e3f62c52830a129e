package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENABLED_MARKETPLACES", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.GeocodeInterval)
	assert.Equal(t, 25, cfg.ImmovlanMaxImages)
	assert.Equal(t, 30, cfg.SpottoMaxImages)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "secret")
	t.Setenv("BASE_URL", "https://dnavastgoed.be/")
	t.Setenv("GEOCODE_INTERVAL_MS", "1000")
	t.Setenv("ENABLED_MARKETPLACES", " Immovlan , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.AdminAPIKey)
	assert.Equal(t, "https://dnavastgoed.be", cfg.BaseURL)
	assert.Equal(t, time.Second, cfg.GeocodeInterval)
	assert.Equal(t, []string{"immovlan"}, cfg.EnabledMarketplaces)
	assert.True(t, cfg.MarketplaceEnabled("immovlan"))
	assert.False(t, cfg.MarketplaceEnabled("spotto"))
}
