package domain

import (
	"strings"
	"time"
)

// Subscriber receives an email when a matching listing is published.
type Subscriber struct {
	Email      string     `gorm:"column:email;primaryKey" json:"email"`
	Firstname  string     `gorm:"column:firstname;size:500;not null" json:"firstname"`
	Lastname   string     `gorm:"column:lastname;size:500;not null" json:"lastname"`
	Telephone  string     `gorm:"column:telephone;size:500" json:"telephone"`
	Postalcode string     `gorm:"column:postalcode;size:500;not null" json:"postalcode"`
	RadiusInKM int        `gorm:"column:radius_in_km;not null" json:"radius_in_km"`
	MinPrice   int        `gorm:"column:min_price;not null" json:"min_price"`
	MaxPrice   int        `gorm:"column:max_price;not null" json:"max_price"`
	Status     string     `gorm:"column:status;size:100;not null" json:"status"`
	Type       string     `gorm:"column:type;size:100;not null" json:"type"`
	Bedrooms   int        `gorm:"column:bedrooms" json:"bedrooms"`
	Suppressed *time.Time `gorm:"column:suppressed" json:"suppressed"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

// Active reports whether the subscriber still receives mail.
func (s *Subscriber) Active() bool {
	return s.Suppressed == nil
}

// FullName joins first and last name.
func (s *Subscriber) FullName() string {
	return strings.TrimSpace(s.Firstname + " " + s.Lastname)
}

// NormalizeEmail is the key form used for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
