package listings

import (
	"context"
	"errors"
	"fmt"

	"vastgoed-sync/internal/domain"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("Listing not found")

// Flag names a pending-action column on listings.
type Flag string

const (
	FlagImmovlan    Flag = "upload_to_immovlan"
	FlagSpotto      Flag = "upload_to_spotto"
	FlagSubscribers Flag = "send_to_subscribers"
)

// Service is the keyed listing store backed by GORM.
type Service struct {
	DB *gorm.DB
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch listings: %w", err)
	}
	return listings, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*domain.Listing, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// GetByURL returns nil, nil when no listing has that URL.
func (s *Service) GetByURL(ctx context.Context, url string) (*domain.Listing, error) {
	var listing domain.Listing
	res := s.DB.WithContext(ctx).Where("url = ?", url).Limit(1).Find(&listing)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &listing, nil
}

// GetPending returns listings with the given flag set, oldest first.
func (s *Service) GetPending(ctx context.Context, flag Flag) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).Where(string(flag)+" = ?", true).Order("id ASC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch pending listings: %w", err)
	}
	return listings, nil
}

func (s *Service) Create(ctx context.Context, listing *domain.Listing) error {
	if err := s.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("Failed to create listing: %w", err)
	}
	return nil
}

// SaveAll writes each listing on its own; a failure stops the loop but keeps
// what was already written.
func (s *Service) SaveAll(ctx context.Context, listings ...*domain.Listing) error {
	for _, l := range listings {
		if err := s.DB.WithContext(ctx).Save(l).Error; err != nil {
			return fmt.Errorf("Failed to save listing %d: %w", l.ID, err)
		}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&domain.Listing{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Get reports the flag's value on l.
func (f Flag) Get(l *domain.Listing) bool {
	switch f {
	case FlagImmovlan:
		return l.UploadToImmovlan
	case FlagSpotto:
		return l.UploadToSpotto
	case FlagSubscribers:
		return l.SendToSubscribers
	}
	return false
}

// Set writes the flag's value on l.
func (f Flag) Set(l *domain.Listing, v bool) {
	switch f {
	case FlagImmovlan:
		l.UploadToImmovlan = v
	case FlagSpotto:
		l.UploadToSpotto = v
	case FlagSubscribers:
		l.SendToSubscribers = v
	}
}
