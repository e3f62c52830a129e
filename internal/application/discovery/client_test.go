package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_RewritesHost(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/property", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "link": "https://cms.dnavastgoed.be/pand/villa-gent/"},
			{"id": 2, "link": ""},
			{"id": 3, "link": "https://cms.dnavastgoed.be/pand/studio/"}
		]`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, Rewrite: Rewrite{From: "https://cms.dnavastgoed.be", To: "https://dnavastgoed.be"}}
	links, err := c.Links(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://dnavastgoed.be/pand/villa-gent/", "https://dnavastgoed.be/pand/studio/"}, links)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "per_page=100")
}

func TestLinks_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Links(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeNetwork))
}

func TestLinks_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_page_number"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Links(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeParse))
}

func TestRewrite_EmptyFrom(t *testing.T) {
	assert.Equal(t, "https://a/b", Rewrite{}.Apply("https://a/b"))
}
