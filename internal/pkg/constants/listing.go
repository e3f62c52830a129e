package constants

// Pand Status values shown on the site.
const (
	StatusForSale    = "Te Koop"
	StatusForRent    = "Te Huur"
	StatusSold       = "Verkocht"
	StatusRented     = "Verhuurd"
	StatusRealisatie = "Realisatie"
)

// ValidStatuses is the set a subscriber can filter on.
var ValidStatuses = []string{StatusForSale, StatusForRent, StatusSold, StatusRented, StatusRealisatie}

// ValidTypes lists the property types used on the site.
var ValidTypes = []string{
	"Woning",
	"Huis",
	"Appartement",
	"Studio",
	"Assistentiewoning",
	"Industrieel/Commercieel",
	"Grond",
	"Garage",
	"Gemeubeld Appartement/Expats",
}

func IsValidStatus(status string) bool {
	return contains(ValidStatuses, status)
}

func IsValidType(t string) bool {
	return contains(ValidTypes, t)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
