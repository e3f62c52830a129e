package immovlan

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/domain"
)

// DefaultMaxImages is the picture limit of the Immovlan import.
const DefaultMaxImages = 25

// Credentials identify the agency and the publishing software.
type Credentials struct {
	BusinessEmail    string
	TechnicalEmail   string
	SoftwareID       string
	ProCustomerID    string
	SoftwarePassword string
}

// Client implements marketplace.Publisher for Immovlan.
type Client struct {
	BaseURL     string
	Credentials Credentials
	Contact     Contact
	MaxImages   int
	Images      *marketplace.ImageEncoder
	HTTP        *http.Client
}

func (c *Client) Name() string { return marketplace.NameImmovlan }

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 2 * time.Minute}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-Business-Email":    c.Credentials.BusinessEmail,
		"X-Technical-Email":   c.Credentials.TechnicalEmail,
		"X-Software-Id":       c.Credentials.SoftwareID,
		"X-Pro-Customer-Id":   c.Credentials.ProCustomerID,
		"X-Software-Password": c.Credentials.SoftwarePassword,
	}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

func (c *Client) Publish(ctx context.Context, l *domain.Listing) (marketplace.Result, error) {
	limit := c.MaxImages
	if limit <= 0 {
		limit = DefaultMaxImages
	}
	enc := c.Images
	if enc == nil {
		enc = &marketplace.ImageEncoder{}
	}
	pictures := enc.Encode(ctx, l.Images, limit)
	body := NewProperty(l, c.Contact, pictures)
	return marketplace.SendJSON(ctx, c.httpClient(), http.MethodPost, c.url("/v2/properties"), c.headers(), body)
}

func (c *Client) Suspend(ctx context.Context, id string) (marketplace.Result, error) {
	return marketplace.SendJSON(ctx, c.httpClient(), http.MethodPost, c.url("/v2/properties/"+id+"/suspend"), c.headers(), nil)
}
