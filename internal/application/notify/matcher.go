// Package notify mails subscribers about new listings that fit their search.
package notify

import (
	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/application/proximity"
	"vastgoed-sync/internal/domain"

	"github.com/shopspring/decimal"
)

// Matcher filters subscribers by area, price, status and type.
type Matcher struct {
	Index *proximity.Index
}

func (m *Matcher) Matches(l *domain.Listing, subs []domain.Subscriber) []domain.Subscriber {
	zip := l.Address().PostalCode
	if zip == "" {
		return nil
	}
	price := marketplace.ParsePrice(l.Price)

	var out []domain.Subscriber
	for _, sub := range subs {
		if !sub.Active() {
			continue
		}
		if l.Status != sub.Status || l.Type != sub.Type {
			continue
		}
		if price.LessThan(decimal.NewFromInt(int64(sub.MinPrice))) || price.GreaterThan(decimal.NewFromInt(int64(sub.MaxPrice))) {
			continue
		}
		if _, ok := m.Index.Within(sub.Postalcode, float64(sub.RadiusInKM))[zip]; !ok {
			continue
		}
		out = append(out, sub)
	}
	return out
}
