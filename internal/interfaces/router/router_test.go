package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"vastgoed-sync/internal/app"
	"vastgoed-sync/internal/config"
	"vastgoed-sync/internal/infrastructure/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	c, err := app.Build(&config.Config{AdminAPIKey: "secret", EnabledMarketplaces: []string{"spotto"}}, db, nil)
	require.NoError(t, err)
	return New(c)
}

func status(t *testing.T, f *fiber.App, method, url string) int {
	resp, err := f.Test(httptest.NewRequest(method, url, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAdminRoutesRequireKey(t *testing.T) {
	f := newApp(t)
	for _, r := range [][2]string{
		{"GET", "/api/v1/properties/fetch-coordinates"},
		{"GET", "/api/v1/properties/spotto/resetstatus"},
		{"GET", "/api/v1/properties/spotto/suspend?id=1"},
		{"GET", "/api/v1/properties/spotto/suspend/all"},
		{"POST", "/api/v1/properties/spotto/purge"},
		{"POST", "/health/reset"},
	} {
		assert.Equal(t, 403, status(t, f, r[0], r[1]), r[1])
		assert.Equal(t, 403, status(t, f, r[0], r[1]+sep(r[1])+"apiKey=wrong"), r[1])
	}
}

func sep(url string) string {
	if strings.Contains(url, "?") {
		return "&"
	}
	return "?"
}

func TestPublicRoutes(t *testing.T) {
	f := newApp(t)
	assert.Equal(t, 200, status(t, f, "GET", "/api/v1/properties"))
	assert.Equal(t, 200, status(t, f, "GET", "/api/v1/subscribers"))
	assert.Equal(t, 200, status(t, f, "GET", "/health/json"))
}

func TestResetStatus_WithKey(t *testing.T) {
	f := newApp(t)
	assert.Equal(t, 200, status(t, f, "GET", "/api/v1/properties/spotto/resetstatus?apiKey=secret"))
	assert.Equal(t, 404, status(t, f, "GET", "/api/v1/properties/immovlan/resetstatus?apiKey=secret"), "immovlan is not enabled")
	assert.Equal(t, 200, status(t, f, "GET", "/api/v1/properties/spotto"), "nothing pending")
}
