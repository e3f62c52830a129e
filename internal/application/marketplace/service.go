// Package marketplace syndicates listings to external marketplaces. The
// per-marketplace mapping lives in the subpackages.
package marketplace

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/rs/zerolog/log"
)

// UploadReporter mails the office which listings a publish run pushed out.
type UploadReporter interface {
	SendUploadReport(ctx context.Context, marketplace string, uploaded []*domain.Listing) error
}

// Service drains the upload flags through the registered publishers.
type Service struct {
	Listings *listings.Service
	Registry *Registry
	Reports  UploadReporter // optional
}

func (s *Service) publisher(name string) (Publisher, listings.Flag, error) {
	p, ok := s.Registry.Get(name)
	if !ok {
		return nil, "", apperrors.NotFound("Marketplace "+name+" is not enabled", nil)
	}
	flag, ok := FlagFor(name)
	if !ok {
		return nil, "", apperrors.NotFound("Marketplace "+name+" has no upload flag", nil)
	}
	return p, flag, nil
}

// PublishPending publishes every listing flagged for the marketplace. A
// failed publish keeps the flag so the next run retries it.
func (s *Service) PublishPending(ctx context.Context, name string) ([]string, error) {
	p, flag, err := s.publisher(name)
	if err != nil {
		return nil, err
	}
	pending, err := s.Listings.GetPending(ctx, flag)
	if err != nil {
		return nil, err
	}

	var lines []string
	var uploaded []*domain.Listing
	for i := range pending {
		l := &pending[i]
		if err := ctx.Err(); err != nil {
			lines = append(lines, "Cancelled: "+err.Error())
			break
		}
		res, err := p.Publish(ctx, l)
		if err != nil {
			log.Error().Err(err).Str("marketplace", name).Uint("id", l.ID).Msg("publish failed")
			lines = append(lines, fmt.Sprintf("FAILED: %s with result %v", l.Name, err))
			continue
		}
		flag.Set(l, false)
		if name == NameImmovlan {
			l.ImmovlanSuspended = false
		}
		uploaded = append(uploaded, l)
		lines = append(lines, fmt.Sprintf("UPLOADED: %s (%d images) with result %s", l.Name, len(l.Images), res.Body))
	}

	if err := s.Listings.SaveAll(ctx, uploaded...); err != nil {
		return lines, err
	}

	if name == NameImmovlan && len(uploaded) > 0 && s.Reports != nil {
		if err := s.Reports.SendUploadReport(ctx, name, uploaded); err != nil {
			log.Error().Err(err).Msg("sending upload report")
		}
	}
	return lines, nil
}

// Suspend takes one listing offline. On failure nothing changes locally.
func (s *Service) Suspend(ctx context.Context, name string, id uint) ([]string, error) {
	p, flag, err := s.publisher(name)
	if err != nil {
		return nil, err
	}
	l, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := p.Suspend(ctx, strconv.FormatUint(uint64(l.ID), 10)); err != nil {
		return nil, err
	}
	flag.Set(l, false)
	if name == NameImmovlan {
		l.ImmovlanSuspended = true
	}
	if err := s.Listings.SaveAll(ctx, l); err != nil {
		return nil, err
	}
	return []string{"Property " + l.Name + " suspended."}, nil
}

// SuspendAll takes every listing offline and marks it for re-publishing.
// Local records are kept.
func (s *Service) SuspendAll(ctx context.Context, name string) ([]string, error) {
	p, flag, err := s.publisher(name)
	if err != nil {
		return nil, err
	}
	all, err := s.Listings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	var changed []*domain.Listing
	for i := range all {
		l := &all[i]
		if _, err := p.Suspend(ctx, strconv.FormatUint(uint64(l.ID), 10)); err != nil {
			log.Error().Err(err).Str("marketplace", name).Uint("id", l.ID).Msg("suspend failed")
			lines = append(lines, fmt.Sprintf("FAILED: %s not suspended: %v", l.Name, err))
			continue
		}
		flag.Set(l, true)
		if name == NameImmovlan {
			l.ImmovlanSuspended = true
		}
		changed = append(changed, l)
		lines = append(lines, "Property "+l.Name+" suspended.")
	}
	return lines, s.Listings.SaveAll(ctx, changed...)
}

// PurgeAll suspends every listing and deletes the local records whose
// suspension succeeded.
func (s *Service) PurgeAll(ctx context.Context, name string) ([]string, error) {
	p, _, err := s.publisher(name)
	if err != nil {
		return nil, err
	}
	all, err := s.Listings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	for i := range all {
		l := &all[i]
		if _, err := p.Suspend(ctx, strconv.FormatUint(uint64(l.ID), 10)); err != nil {
			lines = append(lines, fmt.Sprintf("FAILED: %s not suspended, kept: %v", l.Name, err))
			continue
		}
		if err := s.Listings.Delete(ctx, l.ID); err != nil {
			lines = append(lines, fmt.Sprintf("FAILED: %s suspended but not deleted: %v", l.Name, err))
			continue
		}
		lines = append(lines, "Property "+l.Name+" suspended and deleted.")
	}
	log.Warn().Str("marketplace", name).Int("listings", len(all)).Msg("purge finished")
	return lines, nil
}

// ResetStatuses flags listings for a full re-publish. Spotto skips listings
// without a price and "Realisatie" references.
func (s *Service) ResetStatuses(ctx context.Context, name string) ([]string, error) {
	_, flag, err := s.publisher(name)
	if err != nil {
		return nil, err
	}
	all, err := s.Listings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	var changed []*domain.Listing
	for i := range all {
		l := &all[i]
		if name == NameSpotto && (strings.TrimSpace(l.Price) == "" || strings.Contains(l.Status, "Realisatie")) {
			continue
		}
		flag.Set(l, true)
		changed = append(changed, l)
		lines = append(lines, "Status reset for "+l.Name)
	}
	return lines, s.Listings.SaveAll(ctx, changed...)
}
