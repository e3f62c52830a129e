package emails

import (
	"context"
	"fmt"
	"strings"

	"vastgoed-sync/internal/domain"
)

// UploadReporter mails the office which listings a publish run pushed out.
type UploadReporter struct {
	Brevo      *BrevoClient
	To         string
	TemplateID int // when set, the Brevo template renders params Count and Properties
}

type reportedListing struct {
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Status   string `json:"Status"`
	Location string `json:"Location"`
	Price    string `json:"Price"`
}

func (r *UploadReporter) SendUploadReport(ctx context.Context, marketplace string, uploaded []*domain.Listing) error {
	if r.Brevo == nil || r.To == "" || len(uploaded) == 0 {
		return nil
	}
	props := make([]reportedListing, 0, len(uploaded))
	for _, l := range uploaded {
		props = append(props, reportedListing{Name: l.Name, Type: l.Type, Status: l.Status, Location: l.Location, Price: l.Price})
	}

	if r.TemplateID > 0 {
		return r.Brevo.send(ctx, BrevoSendRequest{
			To:         []BrevoTo{{Email: r.To}},
			TemplateID: r.TemplateID,
			Params:     map[string]any{"Marketplace": marketplace, "Count": len(props), "Properties": props},
		})
	}
	subject := fmt.Sprintf("Upload naar %s: %d panden", marketplace, len(props))
	return r.Brevo.SendHTML(ctx, r.To, subject, EmailLayout(reportContent(marketplace, props)))
}

func reportContent(marketplace string, props []reportedListing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n    <h1>%d panden naar %s</h1>\n    <ul>\n", len(props), EscapeHTML(marketplace))
	for _, p := range props {
		fmt.Fprintf(&b, "      <li><strong>%s</strong> %s, %s, %s, %s</li>\n",
			EscapeHTML(p.Name), EscapeHTML(p.Type), EscapeHTML(p.Status), EscapeHTML(p.Location), EscapeHTML(p.Price))
	}
	b.WriteString("    </ul>\n")
	return b.String()
}
