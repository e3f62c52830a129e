package notify

import (
	"context"
	"fmt"

	"vastgoed-sync/internal/application/emails"
	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"

	"github.com/rs/zerolog/log"
)

// SubscriberSource lists the subscribers that still receive mail.
type SubscriberSource interface {
	GetActive(ctx context.Context) ([]domain.Subscriber, error)
}

// Notifier drains the send_to_subscribers flag.
type Notifier struct {
	Listings    *listings.Service
	Subscribers SubscriberSource
	Matcher     *Matcher
	Mail        emails.TemplateSender
	TemplateID  int
}

// NotifyPending sends one batch per flagged listing. The flag is consumed
// before sending, so a failed send is not retried.
func (n *Notifier) NotifyPending(ctx context.Context) ([]string, error) {
	subs, err := n.Subscribers.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := n.Listings.GetPending(ctx, listings.FlagSubscribers)
	if err != nil {
		return nil, err
	}

	var lines []string
	consumed := make([]*domain.Listing, 0, len(pending))
	for i := range pending {
		l := &pending[i]
		l.SendToSubscribers = false
		consumed = append(consumed, l)
		lines = append(lines, fmt.Sprintf("Found property %s to send.", l.Name))

		matches := n.Matcher.Matches(l, subs)
		if len(matches) == 0 {
			lines = append(lines, "No matching subscribers found to send email to.")
			continue
		}

		lines = append(lines, fmt.Sprintf("Sending mail to %d subscribers.", len(matches)))
		if err := n.Mail.SendTemplatedBatch(ctx, n.TemplateID, recipients(l, matches)); err != nil {
			log.Error().Err(err).Uint("id", l.ID).Msg("notify subscribers")
			lines = append(lines, fmt.Sprintf("FAILED: mail for %s: %v", l.Name, err))
		}
	}

	if err := n.Listings.SaveAll(ctx, consumed...); err != nil {
		return lines, err
	}
	return lines, nil
}

func recipients(l *domain.Listing, subs []domain.Subscriber) []emails.Recipient {
	out := make([]emails.Recipient, 0, len(subs))
	for _, s := range subs {
		out = append(out, emails.Recipient{
			Email: s.Email,
			Name:  s.FullName(),
			Params: map[string]any{
				"Fullname": s.FullName(),
				"Link":     l.URL,
			},
		})
	}
	return out
}
