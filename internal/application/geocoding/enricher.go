package geocoding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vastgoed-sync/internal/domain"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is the pause between two geocoder calls in a batch.
const DefaultInterval = 500 * time.Millisecond

// Enricher fills in missing coordinates one listing at a time. Consecutive
// lookups through the same Enricher are at least Interval apart, whether
// they come from EnrichAll or from repeated Enrich calls.
type Enricher struct {
	Geocoder Geocoder
	Interval time.Duration
	// Sleep waits between calls; nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration)

	mu   sync.Mutex
	last time.Time
}

// Enrich geocodes a single listing. It returns true when coordinates were set.
func (e *Enricher) Enrich(ctx context.Context, l *domain.Listing) (bool, error) {
	e.pace(ctx)
	coords, found, err := e.Geocoder.Lookup(ctx, l.Address())
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	l.SetCoordinates(coords.Lat, coords.Lng)
	return l.HasCoordinates(), nil
}

// EnrichAll geocodes every listing without coordinates and returns one log
// line per listing. Listings are mutated in place; the caller saves them.
func (e *Enricher) EnrichAll(ctx context.Context, listings []*domain.Listing) []string {
	var lines []string
	for _, l := range listings {
		if ctx.Err() != nil {
			lines = append(lines, "Cancelled: "+ctx.Err().Error())
			break
		}
		if l.HasCoordinates() {
			lines = append(lines, "ALREADY FETCHED, skipping: "+l.Name)
			continue
		}
		ok, err := e.Enrich(ctx, l)
		switch {
		case err != nil:
			log.Error().Err(err).Str("listing", l.Name).Msg("geocoding failed")
			lines = append(lines, fmt.Sprintf("ERROR: %s: %v", l.Name, err))
		case !ok:
			lines = append(lines, "NOT FOUND: lat and lng for "+l.Name)
		default:
			log.Info().Str("listing", l.Name).Str("lat", l.Lat).Str("lng", l.Lng).Msg("geocoded")
			lines = append(lines, "FETCHED: lat and lng for "+l.Name)
		}
	}
	return lines
}

// pace sleeps out whatever is left of Interval since the previous lookup.
// The lock is held while sleeping so concurrent callers queue up.
func (e *Enricher) pace(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.Interval
	if d <= 0 {
		d = DefaultInterval
	}
	if !e.last.IsZero() {
		if wait := d - time.Since(e.last); wait > 0 {
			e.sleep(ctx, wait)
		}
	}
	e.last = time.Now()
}

func (e *Enricher) sleep(ctx context.Context, d time.Duration) {
	if e.Sleep != nil {
		e.Sleep(ctx, d)
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
