package emails

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vastgoed-sync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureServer(t *testing.T, status int, got *BrevoSendRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.WriteHeader(status)
	}))
}

func TestSendTemplatedBatch(t *testing.T) {
	var got BrevoSendRequest
	srv := captureServer(t, http.StatusCreated, &got)
	defer srv.Close()

	c := &BrevoClient{APIKey: "key", Endpoint: srv.URL}
	err := c.SendTemplatedBatch(context.Background(), 12, []Recipient{
		{Email: "a@x.be", Name: "An", Params: map[string]any{"Fullname": "An Peeters", "Link": "https://dnavastgoed.be/pand/1"}},
		{Email: "b@x.be", Name: "Bo", Params: map[string]any{"Fullname": "Bo", "Link": "https://dnavastgoed.be/pand/1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 12, got.TemplateID)
	assert.Equal(t, "info@dnavastgoed.be", got.Sender.Email)
	require.Len(t, got.MessageVersions, 2)
	assert.Equal(t, "a@x.be", got.MessageVersions[0].To[0].Email)
	assert.Equal(t, "An Peeters", got.MessageVersions[0].Params["Fullname"])
}

func TestSend_NoAPIKeyIsNoop(t *testing.T) {
	c := &BrevoClient{Endpoint: "http://127.0.0.1:1"}
	assert.NoError(t, c.SendTemplatedBatch(context.Background(), 1, []Recipient{{Email: "a@x.be"}}))
	assert.NoError(t, c.SendHTML(context.Background(), "a@x.be", "s", "<p>x</p>"))
}

func TestSend_Failure(t *testing.T) {
	var got BrevoSendRequest
	srv := captureServer(t, http.StatusBadRequest, &got)
	defer srv.Close()

	c := &BrevoClient{APIKey: "key", Endpoint: srv.URL}
	assert.Error(t, c.SendHTML(context.Background(), "a@x.be", "s", "<p>x</p>"))
}

func TestUploadReport(t *testing.T) {
	var got BrevoSendRequest
	srv := captureServer(t, http.StatusOK, &got)
	defer srv.Close()

	r := &UploadReporter{Brevo: &BrevoClient{APIKey: "key", Endpoint: srv.URL}, To: "office@dnavastgoed.be"}
	err := r.SendUploadReport(context.Background(), "immovlan", []*domain.Listing{{Name: "Villa <3>", Type: "Woning", Price: "€1"}})
	require.NoError(t, err)

	assert.Equal(t, "office@dnavastgoed.be", got.To[0].Email)
	assert.Contains(t, got.Subject, "immovlan")
	assert.Contains(t, got.HTMLContent, "Villa &lt;3&gt;")
}

func TestUploadReport_Template(t *testing.T) {
	var got BrevoSendRequest
	srv := captureServer(t, http.StatusOK, &got)
	defer srv.Close()

	r := &UploadReporter{Brevo: &BrevoClient{APIKey: "key", Endpoint: srv.URL}, To: "office@dnavastgoed.be", TemplateID: 5}
	require.NoError(t, r.SendUploadReport(context.Background(), "immovlan", []*domain.Listing{{Name: "A"}, {Name: "B"}}))
	assert.Equal(t, 5, got.TemplateID)
	assert.Equal(t, "immovlan", got.Params["Marketplace"])
	assert.Equal(t, 2.0, got.Params["Count"])
}

func TestUploadReport_NothingUploaded(t *testing.T) {
	r := &UploadReporter{Brevo: &BrevoClient{APIKey: "key", Endpoint: "http://127.0.0.1:1"}, To: "office@dnavastgoed.be"}
	assert.NoError(t, r.SendUploadReport(context.Background(), "immovlan", nil))
}
