package marketplace

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_CapAndSkip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/img/3.jpg" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("jpeg:" + r.URL.Path))
	}))
	defer srv.Close()

	urls := make([]string, 40)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/img/%d.jpg", srv.URL, i)
	}
	urls[7] = "http://127.0.0.1:1/unreachable.jpg"

	e := &ImageEncoder{}
	images := e.Encode(context.Background(), urls, 25)
	require.Len(t, images, 23)

	assert.Equal(t, 1, images[0].Order)
	raw, err := base64.StdEncoding.DecodeString(images[0].Base64)
	require.NoError(t, err)
	assert.Equal(t, "jpeg:/img/0.jpg", string(raw))

	for _, img := range images {
		assert.LessOrEqual(t, img.Order, 25)
		assert.NotEqual(t, 4, img.Order)
		assert.NotEqual(t, 8, img.Order)
	}
}
