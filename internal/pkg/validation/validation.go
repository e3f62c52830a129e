package validation

import (
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Belgian postal codes are four digits, 1000..9999.
var postalCodeRe = regexp.MustCompile(`^[1-9][0-9]{3}$`)

const (
	MaxRadiusKM = 100
	MaxPrice    = 10_000_000
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidPostalCode(zip string) bool {
	return postalCodeRe.MatchString(zip)
}

func IsValidRadius(km int) bool {
	return km >= 0 && km <= MaxRadiusKM
}

// IsValidPriceRange requires 0 <= min <= max <= MaxPrice.
func IsValidPriceRange(min, max int) bool {
	return min >= 0 && max <= MaxPrice && min <= max
}
