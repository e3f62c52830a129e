package extract

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher downloads listing pages.
type Fetcher struct {
	Client *http.Client
}

// Fetch GETs url and parses the body as HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Internal("creating page request", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.Network("fetching "+url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Network(fmt.Sprintf("fetching %s: status %d", url, resp.StatusCode), nil)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrTypeParse, "parsing "+url, err)
	}
	return doc, nil
}
