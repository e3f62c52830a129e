package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const brevoAPI = "https://api.brevo.com/v3/smtp/email"

// BrevoSendRequest matches the Brevo v3 transactional email body. Either
// HTMLContent or TemplateID is set; MessageVersions fans one template out to
// many recipients with their own params.
type BrevoSendRequest struct {
	Sender          BrevoSender           `json:"sender"`
	To              []BrevoTo             `json:"to,omitempty"`
	Subject         string                `json:"subject,omitempty"`
	HTMLContent     string                `json:"htmlContent,omitempty"`
	TemplateID      int                   `json:"templateId,omitempty"`
	Params          map[string]any        `json:"params,omitempty"`
	MessageVersions []BrevoMessageVersion `json:"messageVersions,omitempty"`
	ReplyTo         *BrevoReplyTo         `json:"replyTo,omitempty"`
}

type BrevoSender struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BrevoTo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type BrevoReplyTo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BrevoMessageVersion struct {
	To     []BrevoTo      `json:"to"`
	Params map[string]any `json:"params,omitempty"`
}

// Recipient is one addressee of a templated batch.
type Recipient struct {
	Email  string
	Name   string
	Params map[string]any
}

// TemplateSender sends one template to many recipients in a single call.
type TemplateSender interface {
	SendTemplatedBatch(ctx context.Context, templateID int, recipients []Recipient) error
}

// BrevoClient sends emails via the Brevo API. An empty APIKey turns every
// send into a no-op.
type BrevoClient struct {
	APIKey     string
	MailFrom   string
	SenderName string
	Endpoint   string // defaults to the public Brevo API
	Client     *http.Client
}

func (c *BrevoClient) sender() BrevoSender {
	from := c.MailFrom
	if from == "" {
		from = "info@dnavastgoed.be"
	}
	name := c.SenderName
	if name == "" {
		name = "D&A Vastgoed"
	}
	return BrevoSender{Email: from, Name: name}
}

func (c *BrevoClient) send(ctx context.Context, body BrevoSendRequest) error {
	if c.APIKey == "" {
		return nil
	}
	body.Sender = c.sender()
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = brevoAPI
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}

// SendTemplatedBatch sends templateID once per recipient in one request.
func (c *BrevoClient) SendTemplatedBatch(ctx context.Context, templateID int, recipients []Recipient) error {
	if len(recipients) == 0 {
		return nil
	}
	versions := make([]BrevoMessageVersion, 0, len(recipients))
	for _, r := range recipients {
		versions = append(versions, BrevoMessageVersion{
			To:     []BrevoTo{{Email: r.Email, Name: r.Name}},
			Params: r.Params,
		})
	}
	return c.send(ctx, BrevoSendRequest{TemplateID: templateID, MessageVersions: versions})
}

// SendHTML sends a single HTML email.
func (c *BrevoClient) SendHTML(ctx context.Context, toEmail, subject, html string) error {
	return c.send(ctx, BrevoSendRequest{
		To:          []BrevoTo{{Email: toEmail}},
		Subject:     subject,
		HTMLContent: html,
	})
}
