// Package discovery lists candidate listing URLs from the WordPress feed.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vastgoed-sync/internal/pkg/apperrors"
)

const feedPath = "/wp-json/wp/v2/property"

// PageSize is the per_page value requested from the feed.
const PageSize = 100

// Rewrite maps links from the internal CMS host to the public host.
type Rewrite struct {
	From string
	To   string
}

// Apply replaces the first occurrence of From with To. An empty From is a no-op.
func (r Rewrite) Apply(s string) string {
	if r.From == "" {
		return s
	}
	return strings.Replace(s, r.From, r.To, 1)
}

type feedItem struct {
	Link string `json:"link"`
}

// Client reads one page of the property feed per call.
type Client struct {
	BaseURL string // feed host: the internal CMS
	Rewrite Rewrite
	Client  *http.Client
}

// Links returns the rewritten listing URLs on the given page (1-based).
func (c *Client) Links(ctx context.Context, page int) ([]string, error) {
	if page < 1 {
		page = 1
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(PageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("orderby", "date")
	endpoint := strings.TrimRight(c.BaseURL, "/") + feedPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Internal("creating feed request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, apperrors.Network("fetching feed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Network(fmt.Sprintf("feed page %d: status %d", page, resp.StatusCode), nil)
	}

	var items []feedItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, apperrors.New(apperrors.ErrTypeParse, "decoding feed", err)
	}

	links := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Link) == "" {
			continue
		}
		links = append(links, c.Rewrite.Apply(it.Link))
	}
	return links, nil
}
