package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/pkg/constants"
	"vastgoed-sync/internal/pkg/validation"

	"gorm.io/gorm"
)

var (
	ErrSubscriberExists   = errors.New("Subscriber already exists")
	ErrSubscriberNotFound = errors.New("Subscriber not found")
	ErrInvalidEmail       = errors.New("Invalid email address")
	ErrInvalidPostalCode  = errors.New("Invalid postal code")
	ErrInvalidRadius      = errors.New("Radius must be between 0 and 100 km")
	ErrInvalidPriceRange  = errors.New("Invalid price range")
	ErrInvalidStatus      = errors.New("Invalid status")
	ErrInvalidType        = errors.New("Invalid property type")
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Validate checks the preferences of a new subscriber.
func Validate(sub *domain.Subscriber) error {
	switch {
	case !validation.IsValidEmail(sub.Email):
		return ErrInvalidEmail
	case !validation.IsValidPostalCode(sub.Postalcode):
		return ErrInvalidPostalCode
	case !validation.IsValidRadius(sub.RadiusInKM):
		return ErrInvalidRadius
	case !validation.IsValidPriceRange(sub.MinPrice, sub.MaxPrice):
		return ErrInvalidPriceRange
	case !constants.IsValidStatus(sub.Status):
		return ErrInvalidStatus
	case !constants.IsValidType(sub.Type):
		return ErrInvalidType
	}
	return nil
}

// Add stores a new, active subscriber. The email is the key, compared
// case-insensitively.
func (s *Service) Add(ctx context.Context, sub *domain.Subscriber) error {
	sub.Email = domain.NormalizeEmail(sub.Email)
	sub.Postalcode = strings.TrimSpace(sub.Postalcode)
	if err := Validate(sub); err != nil {
		return err
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.Subscriber{}).Where("email = ?", sub.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("Failed to look up subscriber: %w", err)
	}
	if count > 0 {
		return ErrSubscriberExists
	}

	sub.Suppressed = nil
	if err := s.DB.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("Failed to create subscriber: %w", err)
	}
	return nil
}

// ApplyWebhook records a bounce or opt-out (suppress) or lifts it.
func (s *Service) ApplyWebhook(ctx context.Context, recipient string, suppress bool) error {
	var sub domain.Subscriber
	err := s.DB.WithContext(ctx).Where("email = ?", domain.NormalizeEmail(recipient)).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubscriberNotFound
	}
	if err != nil {
		return err
	}

	if suppress {
		t := s.now()
		sub.Suppressed = &t
	} else {
		sub.Suppressed = nil
	}
	return s.DB.WithContext(ctx).Model(&sub).Select("suppressed").Updates(&sub).Error
}

// GetActive returns every subscriber that is not suppressed.
func (s *Service) GetActive(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	if err := s.DB.WithContext(ctx).Where("suppressed IS NULL").Order("email ASC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch subscribers: %w", err)
	}
	return subs, nil
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&domain.Subscriber{}).Where("suppressed IS NULL").Count(&count).Error
	return count, err
}
