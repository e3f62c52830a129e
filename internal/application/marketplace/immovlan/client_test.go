package immovlan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastgoed-sync/internal/application/marketplace"
	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapType(t *testing.T) {
	known := []string{
		"Woning", "Huis", "Appartement", "Studio", "Assistentiewoning",
		"Industrieel/Commercieel", "Grond", "Garage", "Gemeubeld Appartement/Expats",
	}
	for _, k := range known {
		assert.NotEqual(t, TypeUndeterminedProperty, MapType(k), k)
	}
	assert.Equal(t, TypeResidence, MapType("Huis"))
	assert.Equal(t, TypeFlatStudio, MapType("Studio"))
	assert.Equal(t, TypeUndeterminedProperty, MapType("Kasteel"))
	assert.Equal(t, TypeUndeterminedProperty, MapType(""))
}

func listing() *domain.Listing {
	return &domain.Listing{
		ID:                    42,
		Name:                  "Villa",
		Type:                  "Woning",
		Status:                "Te Koop",
		Description:           "Mooie villa",
		Location:              "Kerkstraat 12, 9000 Gent",
		Price:                 "€395.000",
		Energy:                "245 kWh/m²",
		LivingArea:            "190 m²",
		Bedrooms:              "3",
		OrientatieAchtergevel: "Zuid-West",
		RisicoOverstroming:    "Nee",
		Bouwvergunning:        "Ja",
	}
}

func TestNewProperty(t *testing.T) {
	p := NewProperty(listing(), Contact{Email: "info@dnavastgoed.be", Phone: "037761922"}, nil)

	assert.Equal(t, "42", p.SoftwareID)
	assert.Equal(t, StatusOnline, p.CommercialStatus)
	assert.Equal(t, marketplace.TransactionSale, p.Classification.TransactionType)
	assert.Equal(t, TypeResidence, p.Classification.PropertyType)
	assert.Equal(t, Address{ZipCode: "9000", Street: "Kerkstraat", StreetNumber: "12", City: "Gent"}, p.Location.Address)
	assert.Equal(t, 395000.0, p.FinancialDetails.Price)
	assert.Equal(t, 245, p.Certificates.Epc.EnergyConsumption)
	assert.Equal(t, "C", p.Certificates.Epc.Label)
	assert.Equal(t, "SW", p.GeneralInformation.Orientation)
	assert.Equal(t, marketplace.FloodRiskNone, p.Legal.FloodRisk)
	assert.Equal(t, marketplace.PermitYes, p.Legal.BuildingPermit)
	assert.Equal(t, marketplace.PermitUnknown, p.Legal.SubdivisionPermit)
	require.NotNil(t, p.Surfaces.LivingArea)
	assert.Equal(t, 190, *p.Surfaces.LivingArea)
	assert.Nil(t, p.Surfaces.LotArea)
	assert.Empty(t, p.Attachments.Pictures)
}

func TestNewProperty_SoldAndGarbage(t *testing.T) {
	l := listing()
	l.Status = "Verkocht"
	l.Price = ""
	l.Energy = "onbekend"
	l.Location = "ergens"
	p := NewProperty(l, Contact{}, nil)

	assert.Equal(t, StatusSold, p.CommercialStatus)
	assert.Equal(t, marketplace.TransactionSale, p.Classification.TransactionType)
	assert.Equal(t, 0.0, p.FinancialDetails.Price)
	assert.Equal(t, 0, p.Certificates.Epc.EnergyConsumption)
	assert.Equal(t, marketplace.Unknown, p.Certificates.Epc.Label)
	assert.Equal(t, Address{}, p.Location.Address)
}

func TestPublish_ImagesCappedAndSuspend(t *testing.T) {
	var got Property
	var suspendPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/img/"):
			_, _ = w.Write([]byte("img"))
		case r.Method == http.MethodPost && r.URL.Path == "/v2/properties":
			assert.Equal(t, "secret", r.Header.Get("X-Software-Password"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case strings.HasSuffix(r.URL.Path, "/suspend"):
			suspendPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := listing()
	for i := 0; i < 40; i++ {
		l.Images = append(l.Images, fmt.Sprintf("%s/img/%d.jpg", srv.URL, i))
	}
	l.Images[2] = "http://127.0.0.1:1/dead.jpg"

	c := &Client{BaseURL: srv.URL, Credentials: Credentials{SoftwarePassword: "secret"}}
	res, err := c.Publish(context.Background(), l)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, `{"status":"ok"}`, res.Body)
	assert.Len(t, got.Attachments.Pictures, 24)
	assert.Equal(t, 1, got.Attachments.Pictures[0].Order)
	assert.Equal(t, 4, got.Attachments.Pictures[2].Order)

	_, err = c.Suspend(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "/v2/properties/42/suspend", suspendPath)
}

func TestPublish_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	res, err := c.Suspend(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeNetwork))
	assert.Equal(t, http.StatusBadRequest, res.Status)
}
