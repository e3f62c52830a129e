package app

import (
	"os"
	"path/filepath"
	"testing"

	"vastgoed-sync/internal/config"
	"vastgoed-sync/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SelectsEnabledMarketplaces(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	c, err := Build(&config.Config{EnabledMarketplaces: []string{"spotto"}}, db, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"spotto"}, c.Runner.Marketplaces.Registry.Names())
	assert.Nil(t, c.Redis)
	assert.NoError(t, c.Health.DB.Ping())
}

func TestBuild_LoadsPostalCodes(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "postal.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"zip":"9000","city":"Gent","lat":51.05,"lng":3.72}]`), 0o600))
	c, err := Build(&config.Config{PostalCodesPath: path}, db, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Runner.Notifier.Matcher.Index.Len())

	_, err = Build(&config.Config{PostalCodesPath: filepath.Join(t.TempDir(), "missing.json")}, db, nil)
	assert.Error(t, err)
}
