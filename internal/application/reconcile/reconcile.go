// Package reconcile decides what a fresh scrape means for the stored listing.
package reconcile

import "vastgoed-sync/internal/domain"

type Outcome string

const (
	OutcomeAdded     Outcome = "added"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeNoPrice   Outcome = "no price"
)

// Decision is the result of Reconcile. Listing is the record to persist
// (nil for unchanged and no price).
type Decision struct {
	Outcome Outcome
	Listing *domain.Listing
}

// Reconcile compares scraped with stored (nil when the URL is new). The
// stored record is mutated in place on an update.
func Reconcile(scraped, stored *domain.Listing) Decision {
	if stored == nil {
		if scraped.Price == "" {
			return Decision{Outcome: OutcomeNoPrice}
		}
		scraped.ID = 0
		scraped.UploadToImmovlan = true
		scraped.UploadToSpotto = true
		scraped.SendToSubscribers = true
		return Decision{Outcome: OutcomeAdded, Listing: scraped}
	}

	if stored.SameContent(scraped) {
		return Decision{Outcome: OutcomeUnchanged}
	}

	stored.CopyContentFrom(scraped)
	stored.Images = append(stored.Images[:0:0], scraped.Images...)
	stored.UploadToImmovlan = true
	stored.UploadToSpotto = true
	return Decision{Outcome: OutcomeUpdated, Listing: stored}
}
