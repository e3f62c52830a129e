package domain

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Listing is the canonical property record scraped from the public site.
// All business fields are kept as the text shown on the page; coercion to
// numbers happens per destination.
type Listing struct {
	ID  uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	URL string `gorm:"column:url;not null;uniqueIndex" json:"url"`

	UploadToImmovlan  bool `gorm:"column:upload_to_immovlan;not null;default:false" json:"upload_to_immovlan"`
	UploadToSpotto    bool `gorm:"column:upload_to_spotto;not null;default:false" json:"upload_to_spotto"`
	SendToSubscribers bool `gorm:"column:send_to_subscribers;not null;default:false" json:"send_to_subscribers"`
	ImmovlanSuspended bool `gorm:"column:immovlan_suspended;not null;default:false" json:"immovlan_suspended"`

	Name         string `gorm:"column:name" json:"name"`
	Type         string `gorm:"column:type" json:"type"`
	Status       string `gorm:"column:status" json:"status"`
	Description  string `gorm:"column:description" json:"description"`
	Location     string `gorm:"column:location" json:"location"`
	Energy       string `gorm:"column:energy" json:"energy"`
	Price        string `gorm:"column:price" json:"price"`
	LotArea      string `gorm:"column:lot_area" json:"lot_area"`
	LivingArea   string `gorm:"column:living_area" json:"living_area"`
	Rooms        string `gorm:"column:rooms" json:"rooms"`
	Bedrooms     string `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms    string `gorm:"column:bathrooms" json:"bathrooms"`
	BuildingYear string `gorm:"column:building_year" json:"building_year"`
	EPCNumber    string `gorm:"column:epc_number" json:"epc_number"`

	// Belgian disclosure fields.
	KatastraalInkomen             string `gorm:"column:katastraal_inkomen" json:"katastraal_inkomen"`
	OrientatieAchtergevel         string `gorm:"column:orientatie_achtergevel" json:"orientatie_achtergevel"`
	Elektriciteitskeuring         string `gorm:"column:elektriciteitskeuring" json:"elektriciteitskeuring"`
	Bouwvergunning                string `gorm:"column:bouwvergunning" json:"bouwvergunning"`
	StedenbouwkundigeBestemming   string `gorm:"column:stedenbouwkundige_bestemming" json:"stedenbouwkundige_bestemming"`
	Verkavelingsvergunning        string `gorm:"column:verkavelingsvergunning" json:"verkavelingsvergunning"`
	Dagvaarding                   string `gorm:"column:dagvaarding" json:"dagvaarding"`
	Verkooprecht                  string `gorm:"column:verkooprecht" json:"verkooprecht"`
	Voorkooprecht                 string `gorm:"column:voorkooprecht" json:"voorkooprecht"`
	RisicoOverstroming            string `gorm:"column:risico_overstroming" json:"risico_overstroming"`
	AfgebakendOverstromingsGebied string `gorm:"column:afgebakend_overstromingsgebied" json:"afgebakend_overstromingsgebied"`
	GScore                        string `gorm:"column:g_score" json:"g_score"`
	PScore                        string `gorm:"column:p_score" json:"p_score"`

	// Empty strings mean "not geocoded yet".
	Lat string `gorm:"column:lat" json:"lat"`
	Lng string `gorm:"column:lng" json:"lng"`

	Images datatypes.JSONSlice[string] `gorm:"column:images;type:json" json:"images"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Listing) TableName() string {
	return "listings"
}

// HasCoordinates reports whether both coordinates are present.
func (l *Listing) HasCoordinates() bool {
	return strings.TrimSpace(l.Lat) != "" && strings.TrimSpace(l.Lng) != ""
}

// SetCoordinates stores both coordinates or clears both.
func (l *Listing) SetCoordinates(lat, lng string) {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" || lng == "" {
		l.Lat, l.Lng = "", ""
		return
	}
	l.Lat, l.Lng = lat, lng
}

// Address splits Location into its structured components.
func (l *Listing) Address() Address {
	return ParseAddress(l.Location)
}

// SameContent compares the business fields of two listings. Identity, flags,
// coordinates and images are ignored. An empty price on other is treated as
// "not captured" and does not count as a difference.
func (l *Listing) SameContent(other *Listing) bool {
	if other == nil {
		return false
	}
	if other.Price != "" && other.Price != l.Price {
		return false
	}
	a, b := l.contentFields(), other.contentFields()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CopyContentFrom overwrites the business fields with the ones from src.
// Price is only taken when src carries one.
func (l *Listing) CopyContentFrom(src *Listing) {
	l.Name = src.Name
	l.Type = src.Type
	l.Status = src.Status
	l.Description = src.Description
	l.Location = src.Location
	if strings.TrimSpace(src.Price) != "" {
		l.Price = src.Price
	}
	l.Energy = src.Energy
	l.LotArea = src.LotArea
	l.LivingArea = src.LivingArea
	l.Rooms = src.Rooms
	l.Bedrooms = src.Bedrooms
	l.Bathrooms = src.Bathrooms
	l.BuildingYear = src.BuildingYear
	l.EPCNumber = src.EPCNumber
	l.KatastraalInkomen = src.KatastraalInkomen
	l.OrientatieAchtergevel = src.OrientatieAchtergevel
	l.Elektriciteitskeuring = src.Elektriciteitskeuring
	l.Bouwvergunning = src.Bouwvergunning
	l.StedenbouwkundigeBestemming = src.StedenbouwkundigeBestemming
	l.Verkavelingsvergunning = src.Verkavelingsvergunning
	l.Dagvaarding = src.Dagvaarding
	l.Verkooprecht = src.Verkooprecht
	l.Voorkooprecht = src.Voorkooprecht
	l.RisicoOverstroming = src.RisicoOverstroming
	l.AfgebakendOverstromingsGebied = src.AfgebakendOverstromingsGebied
	l.GScore = src.GScore
	l.PScore = src.PScore
}

// contentFields lists every business field except Price, in a fixed order.
func (l *Listing) contentFields() []string {
	return []string{
		l.Name, l.Type, l.Status, l.Description, l.Location, l.Energy,
		l.LotArea, l.LivingArea, l.Rooms, l.Bedrooms, l.Bathrooms, l.BuildingYear, l.EPCNumber,
		l.KatastraalInkomen, l.OrientatieAchtergevel, l.Elektriciteitskeuring, l.Bouwvergunning,
		l.StedenbouwkundigeBestemming, l.Verkavelingsvergunning, l.Dagvaarding, l.Verkooprecht,
		l.Voorkooprecht, l.RisicoOverstroming, l.AfgebakendOverstromingsGebied, l.GScore, l.PScore,
	}
}
