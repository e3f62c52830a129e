package domain

import (
	"strings"
)

// Address is the structured form of a listing location ("Kerkstraat 12, 9000 Gent").
// The zero value means the location could not be parsed.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// IsZero reports whether parsing failed.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String renders the address in the same shape it was parsed from.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return a.Street + " " + a.Number + ", " + a.PostalCode + " " + a.City
}

// ParseAddress splits "Street Number, Zip City". The last token of the first
// segment is the house number, together with a trailing "bus N" box. The first
// token of the second segment is the zip. Anything that does not fit yields
// the zero Address.
func ParseAddress(location string) Address {
	parts := strings.Split(strings.TrimSpace(location), ",")
	if len(parts) < 2 {
		return Address{}
	}
	streetTokens := strings.Fields(parts[0])
	cityTokens := strings.Fields(parts[1])
	if len(streetTokens) < 2 || len(cityTokens) < 2 {
		return Address{}
	}
	// "Kerkstraat 12 bus 3": the box suffix belongs to the house number.
	split := len(streetTokens) - 1
	if len(streetTokens) >= 4 && strings.EqualFold(streetTokens[len(streetTokens)-2], "bus") {
		split = len(streetTokens) - 3
	}
	return Address{
		Street:     strings.Join(streetTokens[:split], " "),
		Number:     strings.Join(streetTokens[split:], " "),
		PostalCode: cityTokens[0],
		City:       strings.Join(cityTokens[1:], " "),
	}
}
