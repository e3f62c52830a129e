package marketplace

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Transaction string

const (
	TransactionSale Transaction = "SALE"
	TransactionRent Transaction = "RENT"
)

// TransactionFromStatus reads the sale/rent direction from the status text.
func TransactionFromStatus(status string) Transaction {
	if strings.Contains(status, "Te Koop") || strings.Contains(status, "Verkocht") {
		return TransactionSale
	}
	return TransactionRent
}

// IsSold reports whether the status marks the listing as no longer available.
func IsSold(status string) bool {
	return strings.Contains(status, "Verkocht") ||
		strings.Contains(status, "Verhuurd") ||
		strings.Contains(status, "Realisatie")
}

// ParsePrice reads "€123.456" or "€ 1.250,50". Anything unreadable is zero.
func ParsePrice(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, "€", "")
	s = strings.Join(strings.Fields(s), "")
	d, ok := parseDutchNumber(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseArea reads the number in "120 m²". Anything unreadable is zero.
func ParseArea(s string) int {
	return ParseLeadingInt(s)
}

// ParseAreaPtr is ParseArea with nil for a missing or zero area.
func ParseAreaPtr(s string) *int {
	v := ParseArea(s)
	if v == 0 {
		return nil
	}
	return &v
}

// ParseLeadingInt reads the integer part of the first token, so
// "245 kWh/m²" is 245.
func ParseLeadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	d, ok := parseDutchNumber(fields[0])
	if !ok {
		return 0
	}
	return int(d.IntPart())
}

// parseDutchNumber accepts "." as thousands and "," as decimal separator.
func parseDutchNumber(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
