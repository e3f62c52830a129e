package reconcile

import (
	"context"
	"fmt"

	"vastgoed-sync/internal/application/discovery"
	"vastgoed-sync/internal/application/extract"
	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// LinkSource lists listing URLs for one feed page.
type LinkSource interface {
	Links(ctx context.Context, page int) ([]string, error)
}

// PageFetcher downloads one listing page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Enricher geocodes a newly added listing.
type Enricher interface {
	Enrich(ctx context.Context, l *domain.Listing) (bool, error)
}

// Service runs the scrape job: discover, extract, reconcile, persist.
type Service struct {
	Links    LinkSource
	Pages    PageFetcher
	Rewrite  discovery.Rewrite
	Listings *listings.Service
	Enricher Enricher // optional
}

// Scrape processes one feed page and returns one line per listing. Failures
// of a single listing are reported as lines; only a failing feed aborts.
func (s *Service) Scrape(ctx context.Context, page int) ([]string, error) {
	links, err := s.Links.Links(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("discover page %d: %w", page, err)
	}

	lines := make([]string, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return lines, err
		}
		lines = append(lines, s.scrapeOne(ctx, link))
	}
	log.Info().Int("page", page).Int("links", len(links)).Msg("scrape finished")
	return lines, nil
}

func (s *Service) scrapeOne(ctx context.Context, link string) string {
	doc, err := s.Pages.Fetch(ctx, link)
	if err != nil {
		log.Error().Err(err).Str("url", link).Msg("fetch listing page")
		return fmt.Sprintf("ERROR: %s: %v", link, err)
	}
	scraped := extract.Extract(doc, link, s.Rewrite)

	stored, err := s.Listings.GetByURL(ctx, scraped.URL)
	if err != nil {
		return fmt.Sprintf("ERROR: %s: %v", scraped.URL, err)
	}

	d := Reconcile(scraped, stored)
	switch d.Outcome {
	case OutcomeNoPrice:
		return "NO PRICE: Property " + scraped.Name
	case OutcomeUnchanged:
		return "ALREADY EXISTS: Property " + scraped.Name
	case OutcomeUpdated:
		if err := s.Listings.SaveAll(ctx, d.Listing); err != nil {
			return fmt.Sprintf("ERROR: %s: %v", d.Listing.Name, err)
		}
		log.Info().Uint("id", d.Listing.ID).Str("name", d.Listing.Name).Msg("listing updated")
		return "UPDATED: Property " + d.Listing.Name
	}

	if s.Enricher != nil {
		if _, err := s.Enricher.Enrich(ctx, d.Listing); err != nil {
			log.Warn().Err(err).Str("name", d.Listing.Name).Msg("geocoding new listing")
		}
	}
	if err := s.Listings.Create(ctx, d.Listing); err != nil {
		return fmt.Sprintf("ERROR: %s: %v", d.Listing.Name, err)
	}
	log.Info().Uint("id", d.Listing.ID).Str("name", d.Listing.Name).Msg("listing added")
	return "ADDED: Property " + d.Listing.Name
}
