package spotto

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/domain"
)

const DefaultMaxImages = 30

// Client implements marketplace.Publisher for Spotto.
type Client struct {
	BaseURL         string
	SubscriptionKey string
	PartnerID       string
	Agency          Agency
	MaxImages       int
	HTTP            *http.Client
}

func (c *Client) Name() string { return marketplace.NameSpotto }

func (c *Client) do(ctx context.Context, method, id string, body any) (marketplace.Result, error) {
	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	headers := map[string]string{
		"Ocp-Apim-Subscription-Key": c.SubscriptionKey,
		"Partner-Id":                c.PartnerID,
	}
	url := strings.TrimRight(c.BaseURL, "/") + "/publications/" + id
	return marketplace.SendJSON(ctx, client, method, url, headers, body)
}

// Publish creates or replaces the publication keyed by the listing id.
func (c *Client) Publish(ctx context.Context, l *domain.Listing) (marketplace.Result, error) {
	limit := c.MaxImages
	if limit <= 0 {
		limit = DefaultMaxImages
	}
	return c.do(ctx, http.MethodPut, listingID(l), NewListing(l, c.Agency, limit))
}

func (c *Client) Suspend(ctx context.Context, id string) (marketplace.Result, error) {
	return c.do(ctx, http.MethodDelete, id, nil)
}

func listingID(l *domain.Listing) string {
	return strconv.FormatUint(uint64(l.ID), 10)
}
