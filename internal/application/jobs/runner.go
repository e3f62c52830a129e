package jobs

import (
	"context"

	"vastgoed-sync/internal/application/geocoding"
	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/application/notify"
	"vastgoed-sync/internal/application/reconcile"
	"vastgoed-sync/internal/domain"
)

// Runner exposes every batch job behind its lock. The HTTP handlers and the
// CLI both go through it. Publish, suspend, purge and reset of one
// marketplace share a lock because they all touch the same flag.
type Runner struct {
	Locker       Locker
	Listings     *listings.Service
	Scraper      *reconcile.Service
	Enricher     *geocoding.Enricher
	Marketplaces *marketplace.Service
	Notifier     *notify.Notifier
}

func marketplaceJob(name string) string { return "marketplace:" + name }

func (r *Runner) Scrape(ctx context.Context, page int) ([]string, error) {
	return Run(ctx, r.Locker, "scrape", func(ctx context.Context) ([]string, error) {
		return r.Scraper.Scrape(ctx, page)
	})
}

// Geocode fills in coordinates for every stored listing that lacks them.
func (r *Runner) Geocode(ctx context.Context) ([]string, error) {
	return Run(ctx, r.Locker, "geocode", func(ctx context.Context) ([]string, error) {
		all, err := r.Listings.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		ptrs := make([]*domain.Listing, len(all))
		missing := make(map[*domain.Listing]bool)
		for i := range all {
			ptrs[i] = &all[i]
			missing[ptrs[i]] = !all[i].HasCoordinates()
		}

		lines := r.Enricher.EnrichAll(ctx, ptrs)

		var changed []*domain.Listing
		for _, l := range ptrs {
			if missing[l] && l.HasCoordinates() {
				changed = append(changed, l)
			}
		}
		if err := r.Listings.SaveAll(ctx, changed...); err != nil {
			return lines, err
		}
		return lines, nil
	})
}

func (r *Runner) Publish(ctx context.Context, name string) ([]string, error) {
	return Run(ctx, r.Locker, marketplaceJob(name), func(ctx context.Context) ([]string, error) {
		return r.Marketplaces.PublishPending(ctx, name)
	})
}

func (r *Runner) Suspend(ctx context.Context, name string, id uint) ([]string, error) {
	return Run(ctx, r.Locker, marketplaceJob(name), func(ctx context.Context) ([]string, error) {
		return r.Marketplaces.Suspend(ctx, name, id)
	})
}

func (r *Runner) SuspendAll(ctx context.Context, name string) ([]string, error) {
	return Run(ctx, r.Locker, marketplaceJob(name), func(ctx context.Context) ([]string, error) {
		return r.Marketplaces.SuspendAll(ctx, name)
	})
}

func (r *Runner) Purge(ctx context.Context, name string) ([]string, error) {
	return Run(ctx, r.Locker, marketplaceJob(name), func(ctx context.Context) ([]string, error) {
		return r.Marketplaces.PurgeAll(ctx, name)
	})
}

func (r *Runner) Reset(ctx context.Context, name string) ([]string, error) {
	return Run(ctx, r.Locker, marketplaceJob(name), func(ctx context.Context) ([]string, error) {
		return r.Marketplaces.ResetStatuses(ctx, name)
	})
}

func (r *Runner) Notify(ctx context.Context) ([]string, error) {
	return Run(ctx, r.Locker, "notify", func(ctx context.Context) ([]string, error) {
		return r.Notifier.NotifyPending(ctx)
	})
}
