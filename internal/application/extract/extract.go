// Package extract turns a listing page into a domain.Listing.
package extract

import (
	"strings"

	"vastgoed-sync/internal/application/discovery"
	"vastgoed-sync/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

const (
	selName        = "h1.property-title"
	selDescription = "div.description-inner"
	selLocation    = "div.property-location a"
	selEnergy      = "div.indicator-energy"
	selType        = "a.type-property"
	selDetails     = "div.property-detail-detail ul li"
	selGallery     = "div.list-gallery-property-v2 a"
)

// setter writes a detail value into its field.
type setter func(l *domain.Listing, v string)

// labels maps the Dutch detail labels shown on the page to listing fields.
var labels = map[string]setter{
	"Grondoppervlakte":               func(l *domain.Listing, v string) { l.LotArea = v },
	"Oppervlakte bewoonbaar":         func(l *domain.Listing, v string) { l.LivingArea = v },
	"Kamers":                         func(l *domain.Listing, v string) { l.Rooms = v },
	"Slaapkamers":                    func(l *domain.Listing, v string) { l.Bedrooms = v },
	"Badkamers":                      func(l *domain.Listing, v string) { l.Bathrooms = v },
	"Prijs":                          func(l *domain.Listing, v string) { l.Price = v },
	"Pand Status":                    func(l *domain.Listing, v string) { l.Status = v },
	"Bouwjaar":                       func(l *domain.Listing, v string) { l.BuildingYear = v },
	"EPC Certificaatnr":              func(l *domain.Listing, v string) { l.EPCNumber = v },
	"Katastraal Inkomen (KI)":        func(l *domain.Listing, v string) { l.KatastraalInkomen = v },
	"Orientatie achtergevel":         func(l *domain.Listing, v string) { l.OrientatieAchtergevel = v },
	"Elektriciteitskeuring":          func(l *domain.Listing, v string) { l.Elektriciteitskeuring = v },
	"Bouwvergunning":                 func(l *domain.Listing, v string) { l.Bouwvergunning = v },
	"Stedenbouwkundige bestemming":   func(l *domain.Listing, v string) { l.StedenbouwkundigeBestemming = v },
	"Verkavelingsvergunning":         func(l *domain.Listing, v string) { l.Verkavelingsvergunning = v },
	"Dagvaarding":                    func(l *domain.Listing, v string) { l.Dagvaarding = v },
	"Verkooprecht":                   func(l *domain.Listing, v string) { l.Verkooprecht = v },
	"Voorkooprecht":                  func(l *domain.Listing, v string) { l.Voorkooprecht = v },
	"Risicozone voor overstromingen": func(l *domain.Listing, v string) { l.RisicoOverstroming = v },
	"Afgebakend overstromingsgebied": func(l *domain.Listing, v string) { l.AfgebakendOverstromingsGebied = v },
	"G-score":                        func(l *domain.Listing, v string) { l.GScore = v },
	"P-score":                        func(l *domain.Listing, v string) { l.PScore = v },
}

// Extract reads every known field from doc. Missing elements leave fields
// empty; a nil doc yields a listing with only the URL set.
func Extract(doc *goquery.Document, sourceURL string, rw discovery.Rewrite) *domain.Listing {
	l := &domain.Listing{URL: rw.Apply(sourceURL)}
	if doc == nil {
		return l
	}

	l.Name = text(doc.Find(selName).First())
	l.Description = text(doc.Find(selDescription).First())
	l.Location = text(doc.Find(selLocation).First())
	l.Energy = text(doc.Find(selEnergy).First())
	l.Type = text(doc.Find(selType).First())

	doc.Find(selDetails).Each(func(_ int, li *goquery.Selection) {
		label := normalizeLabel(text(li.Find("div.text").First()))
		set, ok := labels[label]
		if !ok {
			return
		}
		set(l, text(li.Find("div.value").First()))
	})

	images := make([]string, 0)
	doc.Find(selGallery).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		images = append(images, rw.Apply(strings.TrimSpace(href)))
	})
	l.Images = images

	return l
}

func text(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(s.Text()), " ")
}

func normalizeLabel(s string) string {
	s = norm.NFC.String(s)
	return strings.TrimSpace(strings.TrimRight(s, ": "))
}
