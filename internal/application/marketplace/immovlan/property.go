// Package immovlan maps listings onto the Immovlan import API.
package immovlan

import (
	"strconv"

	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/domain"
)

type PropertyType string

const (
	TypeResidence            PropertyType = "Residence"
	TypeFlatApartment        PropertyType = "FlatApartment"
	TypeFlatStudio           PropertyType = "FlatStudio"
	TypeServiceFlat          PropertyType = "ServiceFlat"
	TypeCommerceBuilding     PropertyType = "CommerceBuilding"
	TypeDevelopmentSite      PropertyType = "DevelopmentSite"
	TypeGarageBuilding       PropertyType = "GarageBuilding"
	TypeUndeterminedProperty PropertyType = "UndeterminedProperty"
)

var propertyTypes = map[string]PropertyType{
	"Woning":                       TypeResidence,
	"Huis":                         TypeResidence,
	"Appartement":                  TypeFlatApartment,
	"Studio":                       TypeFlatStudio,
	"Assistentiewoning":            TypeServiceFlat,
	"Industrieel/Commercieel":      TypeCommerceBuilding,
	"Grond":                        TypeDevelopmentSite,
	"Garage":                       TypeGarageBuilding,
	"Gemeubeld Appartement/Expats": TypeFlatApartment,
}

// MapType returns the Immovlan category for a site type.
func MapType(t string) PropertyType {
	if pt, ok := propertyTypes[t]; ok {
		return pt
	}
	return TypeUndeterminedProperty
}

type CommercialStatus string

const (
	StatusOnline CommercialStatus = "ONLINE"
	StatusSold   CommercialStatus = "SOLD"
)

func commercialStatus(status string) CommercialStatus {
	if marketplace.IsSold(status) {
		return StatusSold
	}
	return StatusOnline
}

type Property struct {
	SoftwareID           string             `json:"softwareId"`
	PropertyProReference string             `json:"propertyProReference"`
	CommercialStatus     CommercialStatus   `json:"commercialStatus"`
	Classification       Classification     `json:"classification"`
	Location             Location           `json:"location"`
	Description          Description        `json:"description"`
	FinancialDetails     FinancialDetails   `json:"financialDetails"`
	GeneralInformation   GeneralInformation `json:"generalInformation"`
	Surfaces             Surfaces           `json:"surfaces"`
	Certificates         Certificates       `json:"certificates"`
	Legal                Legal              `json:"legal"`
	Attachments          Attachments        `json:"attachments"`
}

type Classification struct {
	TransactionType marketplace.Transaction `json:"transactionType"`
	PropertyType    PropertyType            `json:"propertyType"`
}

type Location struct {
	Address            Address `json:"address"`
	IsAddressDisplayed bool    `json:"isAddressDisplayed"`
	Latitude           string  `json:"latitude,omitempty"`
	Longitude          string  `json:"longitude,omitempty"`
}

type Address struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	City         string `json:"city"`
}

type Description struct {
	Dutch  string `json:"dutch"`
	French string `json:"french"`
}

type FinancialDetails struct {
	Price     float64 `json:"price"`
	PriceType string  `json:"priceType"`
}

type GeneralInformation struct {
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	BuildingYear int    `json:"buildingYear,omitempty"`
	Orientation  string `json:"backFacadeOrientation"`
}

type Surfaces struct {
	LivingArea *int `json:"livingArea,omitempty"`
	LotArea    *int `json:"groundArea,omitempty"`
	Rooms      int  `json:"numberOfRooms,omitempty"`
	Bedrooms   int  `json:"numberOfBedrooms,omitempty"`
	Bathrooms  int  `json:"numberOfBathrooms,omitempty"`
}

type Certificates struct {
	Epc EPC `json:"epc"`
}

type EPC struct {
	EnergyConsumption int    `json:"energyConsumption"`
	Label             string `json:"label"`
	CertificateNumber string `json:"certificateNumber,omitempty"`
}

type Legal struct {
	FloodRisk           marketplace.FloodRisk `json:"floodRisk"`
	DelimitedFloodZone  marketplace.FloodRisk `json:"delimitedFloodZone"`
	BuildingPermit      marketplace.Permit    `json:"buildingPermit"`
	SubdivisionPermit   marketplace.Permit    `json:"subdivisionPermit"`
	CadastralIncome     int                   `json:"cadastralIncome,omitempty"`
	UrbanPlanning       string                `json:"urbanPlanningDestination,omitempty"`
	ElectricityComplies string                `json:"electricityInspection,omitempty"`
}

type Attachments struct {
	Pictures []Picture `json:"pictures"`
}

type Picture struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// Contact is the agency contact shown on every listing.
type Contact struct {
	Email string
	Phone string
}

// NewProperty builds the Immovlan payload. Pictures are already encoded.
func NewProperty(l *domain.Listing, contact Contact, pictures []marketplace.EncodedImage) Property {
	id := strconv.FormatUint(uint64(l.ID), 10)
	addr := l.Address()

	p := Property{
		SoftwareID:           id,
		PropertyProReference: id,
		CommercialStatus:     commercialStatus(l.Status),
		Classification: Classification{
			TransactionType: marketplace.TransactionFromStatus(l.Status),
			PropertyType:    MapType(l.Type),
		},
		Location: Location{
			Address: Address{
				ZipCode:      addr.PostalCode,
				Street:       addr.Street,
				StreetNumber: addr.Number,
				City:         addr.City,
			},
			IsAddressDisplayed: true,
			Latitude:           l.Lat,
			Longitude:          l.Lng,
		},
		Description: Description{Dutch: l.Description, French: l.Description},
		FinancialDetails: FinancialDetails{
			Price:     marketplace.ParsePrice(l.Price).InexactFloat64(),
			PriceType: "AskedPrice",
		},
		GeneralInformation: GeneralInformation{
			ContactEmail: contact.Email,
			ContactPhone: contact.Phone,
			BuildingYear: marketplace.ParseLeadingInt(l.BuildingYear),
			Orientation:  string(marketplace.ParseOrientation(l.OrientatieAchtergevel)),
		},
		Surfaces: Surfaces{
			LivingArea: marketplace.ParseAreaPtr(l.LivingArea),
			LotArea:    marketplace.ParseAreaPtr(l.LotArea),
			Rooms:      marketplace.ParseLeadingInt(l.Rooms),
			Bedrooms:   marketplace.ParseLeadingInt(l.Bedrooms),
			Bathrooms:  marketplace.ParseLeadingInt(l.Bathrooms),
		},
		Certificates: Certificates{Epc: EPC{
			EnergyConsumption: marketplace.ParseLeadingInt(l.Energy),
			Label:             string(marketplace.ParseEnergyLabel(l.Energy)),
			CertificateNumber: l.EPCNumber,
		}},
		Legal: Legal{
			FloodRisk:           marketplace.ParseFloodRisk(l.RisicoOverstroming),
			DelimitedFloodZone:  marketplace.ParseFloodRisk(l.AfgebakendOverstromingsGebied),
			BuildingPermit:      marketplace.ParsePermit(l.Bouwvergunning),
			SubdivisionPermit:   marketplace.ParsePermit(l.Verkavelingsvergunning),
			CadastralIncome:     int(marketplace.ParsePrice(l.KatastraalInkomen).IntPart()),
			UrbanPlanning:       l.StedenbouwkundigeBestemming,
			ElectricityComplies: l.Elektriciteitskeuring,
		},
		Attachments: Attachments{Pictures: make([]Picture, 0, len(pictures))},
	}
	for _, img := range pictures {
		p.Attachments.Pictures = append(p.Attachments.Pictures, Picture{Order: img.Order, Content: img.Base64})
	}
	return p
}
