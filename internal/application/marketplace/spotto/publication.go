// Package spotto maps listings onto Spotto publications.
package spotto

import (
	"path"
	"strings"

	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/domain"
)

type PropertyType string

const (
	TypeHouse      PropertyType = "House"
	TypeApartment  PropertyType = "Apartment"
	TypeIndustrial PropertyType = "Industrial"
	TypeLand       PropertyType = "Land"
	TypeGarage     PropertyType = "Garage"
	TypeOther      PropertyType = "Other"
)

type PropertySubType string

const (
	SubTypeStudio          PropertySubType = "Studio"
	SubTypeServiceFlat     PropertySubType = "ServiceFlat"
	SubTypeCommercialSpace PropertySubType = "CommercialSpace"
	SubTypeGarage          PropertySubType = "Garage"
	SubTypeOther           PropertySubType = "Other"
)

var propertyTypes = map[string]PropertyType{
	"Woning":                       TypeHouse,
	"Huis":                         TypeHouse,
	"Appartement":                  TypeApartment,
	"Studio":                       TypeApartment,
	"Assistentiewoning":            TypeApartment,
	"Industrieel/Commercieel":      TypeIndustrial,
	"Grond":                        TypeLand,
	"Garage":                       TypeGarage,
	"Gemeubeld Appartement/Expats": TypeApartment,
}

var subTypes = map[string]PropertySubType{
	"Studio":                  SubTypeStudio,
	"Assistentiewoning":       SubTypeServiceFlat,
	"Industrieel/Commercieel": SubTypeCommercialSpace,
	"Garage":                  SubTypeGarage,
}

func MapType(t string) PropertyType {
	if pt, ok := propertyTypes[t]; ok {
		return pt
	}
	return TypeOther
}

func MapSubType(t string) PropertySubType {
	if st, ok := subTypes[t]; ok {
		return st
	}
	return SubTypeOther
}

type TransactionType string

const (
	TransactionSale TransactionType = "Sale"
	TransactionRent TransactionType = "Rent"
)

// transactionType is Rent only for rental statuses. Realisatie and unknown
// statuses are published as Sale.
func transactionType(status string) TransactionType {
	if strings.Contains(status, "Te Huur") || strings.Contains(status, "Verhuurd") {
		return TransactionRent
	}
	return TransactionSale
}

type Listing struct {
	Property    Property    `json:"property"`
	Transaction Transaction `json:"transaction"`
	Resource    Resource    `json:"resource"`
}

type Property struct {
	Type         PropertyType    `json:"type"`
	SubType      PropertySubType `json:"subType"`
	Descriptions []Description   `json:"descriptions"`
	Location     *LocationInfo   `json:"location,omitempty"`
	Energy       *Energy         `json:"energy,omitempty"`
	Orientation  string          `json:"orientation"`
	FloodRisk    string          `json:"floodRisk"`
	Permits      Permits         `json:"permits"`
	LivingArea   *int            `json:"livingArea,omitempty"`
	LotArea      *int            `json:"lotArea,omitempty"`
	Bedrooms     int             `json:"bedrooms,omitempty"`
	Bathrooms    int             `json:"bathrooms,omitempty"`
}

type Description struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

type LocationInfo struct {
	Address AddressInfo `json:"address"`
}

type AddressInfo struct {
	Street                  string `json:"street"`
	StreetNumber            string `json:"streetNumber"`
	MunicipalityPostalCode  string `json:"municipalityPostalCode"`
	MunicipalityName        string `json:"municipalityName"`
	TwoLetterIsoCountryCode string `json:"twoLetterIsoCountryCode"`
}

type Energy struct {
	Consumption       int    `json:"epcConsumption"`
	Label             string `json:"epcLabel"`
	CertificateNumber string `json:"epcCertificateNumber,omitempty"`
}

type Permits struct {
	Building    string `json:"buildingPermit"`
	Subdivision string `json:"subdivisionPermit"`
}

type Transaction struct {
	Type                   TransactionType `json:"type"`
	AvailabilityStatusType string          `json:"availabilityStatusType"`
	HidePriceDetails       bool            `json:"hidePriceDetails"`
	ContactInfo            ContactInfo     `json:"contactInfo"`
	SaleTypeInfo           *PriceInfo      `json:"saleTypeInfo,omitempty"`
	RentTypeInfo           *PriceInfo      `json:"rentTypeInfo,omitempty"`
}

type PriceInfo struct {
	Price float64 `json:"price"`
}

type ContactInfo struct {
	ContactReference string        `json:"contactReference"`
	ContactPerson    ContactPerson `json:"contactPerson"`
}

type ContactPerson struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

type Resource struct {
	Images          []Image         `json:"images"`
	PublicationInfo PublicationInfo `json:"publicationInfo"`
}

type Image struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	URL      string `json:"url"`
}

type PublicationInfo struct {
	BrokerWebsiteURL string `json:"brokerWebsiteUrl"`
}

// Agency is the broker shown on every publication.
type Agency struct {
	Name       string
	Email      string
	Phone      string
	PictureURL string
	WebsiteURL string
}

// NewListing builds the publication body. Images are sent as references,
// at most maxImages of them.
func NewListing(l *domain.Listing, agency Agency, maxImages int) Listing {
	tt := transactionType(l.Status)
	hasPrice := strings.TrimSpace(l.Price) != ""

	out := Listing{
		Property: Property{
			Type:    MapType(l.Type),
			SubType: MapSubType(l.Type),
			Descriptions: []Description{
				{Type: "Title", Language: "NL", Content: l.Name},
				{Type: "DetailedDescription", Language: "NL", Content: l.Description},
			},
			Orientation: string(marketplace.ParseOrientation(l.OrientatieAchtergevel)),
			FloodRisk:   string(marketplace.ParseFloodRisk(l.RisicoOverstroming)),
			Permits: Permits{
				Building:    string(marketplace.ParsePermit(l.Bouwvergunning)),
				Subdivision: string(marketplace.ParsePermit(l.Verkavelingsvergunning)),
			},
			LivingArea: marketplace.ParseAreaPtr(l.LivingArea),
			LotArea:    marketplace.ParseAreaPtr(l.LotArea),
			Bedrooms:   marketplace.ParseLeadingInt(l.Bedrooms),
			Bathrooms:  marketplace.ParseLeadingInt(l.Bathrooms),
		},
		Transaction: Transaction{
			Type:                   tt,
			AvailabilityStatusType: "Available",
			HidePriceDetails:       !hasPrice,
			ContactInfo: ContactInfo{
				ContactReference: agency.Name,
				ContactPerson: ContactPerson{
					Email:       agency.Email,
					Name:        agency.Name,
					PhoneNumber: agency.Phone,
					PictureURL:  agency.PictureURL,
				},
			},
		},
		Resource: Resource{
			Images:          images(l.Images, maxImages),
			PublicationInfo: PublicationInfo{BrokerWebsiteURL: agency.WebsiteURL},
		},
	}

	if addr := l.Address(); !addr.IsZero() {
		out.Property.Location = &LocationInfo{Address: AddressInfo{
			Street:                  addr.Street,
			StreetNumber:            addr.Number,
			MunicipalityPostalCode:  addr.PostalCode,
			MunicipalityName:        addr.City,
			TwoLetterIsoCountryCode: "BE",
		}}
	}
	if strings.TrimSpace(l.Energy) != "" {
		out.Property.Energy = &Energy{
			Consumption:       marketplace.ParseLeadingInt(l.Energy),
			Label:             string(marketplace.ParseEnergyLabel(l.Energy)),
			CertificateNumber: l.EPCNumber,
		}
	}
	if hasPrice {
		price := &PriceInfo{Price: marketplace.ParsePrice(l.Price).InexactFloat64()}
		if tt == TransactionSale {
			out.Transaction.SaleTypeInfo = price
		} else {
			out.Transaction.RentTypeInfo = price
		}
	}
	return out
}

func images(urls []string, limit int) []Image {
	if limit > 0 && len(urls) > limit {
		urls = urls[:limit]
	}
	out := make([]Image, 0, len(urls))
	for _, u := range urls {
		ext := strings.ToLower(path.Ext(u))
		if ext == "" {
			ext = ".jpg"
		}
		out = append(out, Image{FileName: path.Base(u), FileType: ext, URL: u})
	}
	return out
}
