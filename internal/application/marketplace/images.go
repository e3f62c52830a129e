package marketplace

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// EncodedImage is one downloaded picture. Order is the 1-based position in
// the source gallery, so gaps show where a download failed.
type EncodedImage struct {
	Order  int
	URL    string
	Base64 string
}

// ImageEncoder downloads gallery images for marketplaces that want the bytes.
type ImageEncoder struct {
	Client *http.Client
}

// Encode downloads at most limit images. A failing image is logged and
// skipped; the rest still go out.
func (e *ImageEncoder) Encode(ctx context.Context, urls []string, limit int) []EncodedImage {
	if limit >= 0 && len(urls) > limit {
		urls = urls[:limit]
	}
	out := make([]EncodedImage, 0, len(urls))
	for i, u := range urls {
		data, err := e.download(ctx, u)
		if err != nil {
			log.Warn().Err(err).Str("url", u).Msg("skipping image")
			continue
		}
		out = append(out, EncodedImage{
			Order:  i + 1,
			URL:    u,
			Base64: base64.StdEncoding.EncodeToString(data),
		})
	}
	return out
}

func (e *ImageEncoder) download(ctx context.Context, url string) ([]byte, error) {
	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
