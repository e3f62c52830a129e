package properties

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"vastgoed-sync/internal/application/jobs"
	listsvc "vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/infrastructure/database"
	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	page      int
	suspended uint
	called    string
	lines     []string
	err       error
}

func (f *fakeJobs) run(name string) ([]string, error) {
	f.called = name
	return f.lines, f.err
}

func (f *fakeJobs) Scrape(_ context.Context, page int) ([]string, error) {
	f.page = page
	return f.run("scrape")
}
func (f *fakeJobs) Geocode(context.Context) ([]string, error) { return f.run("geocode") }
func (f *fakeJobs) Publish(_ context.Context, n string) ([]string, error) { return f.run("publish:" + n) }
func (f *fakeJobs) Suspend(_ context.Context, n string, id uint) ([]string, error) {
	f.suspended = id
	return f.run("suspend:" + n)
}
func (f *fakeJobs) SuspendAll(_ context.Context, n string) ([]string, error) {
	return f.run("suspendall:" + n)
}
func (f *fakeJobs) Purge(_ context.Context, n string) ([]string, error) { return f.run("purge:" + n) }
func (f *fakeJobs) Reset(_ context.Context, n string) ([]string, error) { return f.run("reset:" + n) }
func (f *fakeJobs) Notify(context.Context) ([]string, error) { return f.run("notify") }

func setup(t *testing.T) (*fiber.App, *fakeJobs, *listsvc.Service) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	svc := &listsvc.Service{DB: db}
	fj := &fakeJobs{}
	h := &Handlers{Listings: svc, Jobs: fj}

	app := fiber.New()
	g := app.Group("/properties")
	g.Get("/", h.Get)
	g.Get("/scrape", h.Scrape)
	g.Get("/fetch-coordinates", h.FetchCoordinates)
	g.Get("/mail", h.Mail)
	g.Get("/:marketplace", h.Publish)
	g.Get("/:marketplace/resetstatus", h.ResetStatus)
	g.Get("/:marketplace/suspend/all", h.SuspendAll)
	g.Get("/:marketplace/suspend", h.Suspend)
	g.Post("/:marketplace/purge", h.Purge)
	return app, fj, svc
}

func decode(t *testing.T, app *fiber.App, method, url string) (int, map[string]interface{}) {
	resp, err := app.Test(httptest.NewRequest(method, url, nil))
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGet_ListAndByID(t *testing.T) {
	app, _, svc := setup(t)
	l := &domain.Listing{URL: "https://dnavastgoed.be/pand/villa", Name: "Villa", Price: "€350.000"}
	require.NoError(t, svc.Create(context.Background(), l))

	code, body := decode(t, app, "GET", "/properties")
	assert.Equal(t, 200, code)
	assert.Len(t, body["data"], 1)

	code, body = decode(t, app, "GET", "/properties?id=1")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Villa", body["data"].(map[string]interface{})["name"])

	code, _ = decode(t, app, "GET", "/properties?id=99")
	assert.Equal(t, 404, code)

	code, _ = decode(t, app, "GET", "/properties?id=abc")
	assert.Equal(t, 400, code)
}

func TestScrape_PageParam(t *testing.T) {
	app, fj, _ := setup(t)
	fj.lines = []string{"ADDED: Property Villa"}

	code, body := decode(t, app, "GET", "/properties/scrape?page=3")
	assert.Equal(t, 200, code)
	assert.Equal(t, 3, fj.page)
	assert.Equal(t, []interface{}{"ADDED: Property Villa"}, body["data"])

	code, _ = decode(t, app, "GET", "/properties/scrape?page=0")
	assert.Equal(t, 400, code)
}

func TestMarketplaceRoutes(t *testing.T) {
	app, fj, _ := setup(t)

	for url, want := range map[string]string{
		"/properties/immovlan":             "publish:immovlan",
		"/properties/spotto/resetstatus":   "reset:spotto",
		"/properties/immovlan/suspend/all": "suspendall:immovlan",
		"/properties/fetch-coordinates":    "geocode",
		"/properties/mail":                 "notify",
	} {
		code, _ := decode(t, app, "GET", url)
		assert.Equal(t, 200, code, url)
		assert.Equal(t, want, fj.called, url)
	}

	code, _ := decode(t, app, "GET", "/properties/spotto/suspend?id=7")
	assert.Equal(t, 200, code)
	assert.Equal(t, uint(7), fj.suspended)

	code, _ = decode(t, app, "GET", "/properties/spotto/suspend")
	assert.Equal(t, 400, code)

	code, _ = decode(t, app, "POST", "/properties/immovlan/purge")
	assert.Equal(t, 200, code)
	assert.Equal(t, "purge:immovlan", fj.called)
}

func TestJobErrors(t *testing.T) {
	app, fj, _ := setup(t)

	fj.err = jobs.ErrJobRunning
	code, _ := decode(t, app, "GET", "/properties/immovlan")
	assert.Equal(t, 409, code)

	fj.err = apperrors.NotFound("Unknown marketplace: foo", nil)
	code, _ = decode(t, app, "GET", "/properties/foo")
	assert.Equal(t, 404, code)

	fj.err = apperrors.Network("feed unavailable", nil)
	fj.lines = []string{"partial"}
	code, body := decode(t, app, "GET", "/properties/scrape")
	assert.Equal(t, 502, code)
	details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Equal(t, []interface{}{"partial"}, details["lines"])
}
