package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastgoed-sync/internal/application/discovery"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<h1 class="property-title">  Ruime   villa
 met tuin </h1>
<div class="description-inner"><p>Mooie villa.</p> <p>Instapklaar.</p></div>
<div class="property-location"><a href="#">Kerkstraat 12, 9000 Gent</a></div>
<div class="indicator-energy">245 kWh/m²</div>
<a class="type-property" href="#">Woning</a>
<div class="property-detail-detail"><ul>
  <li><div class="text">Prijs:</div><div class="value">€ 395.000</div></li>
  <li><div class="text">Pand Status:</div><div class="value">Te Koop</div></li>
  <li><div class="text">Slaapkamers:</div><div class="value">3</div></li>
  <li><div class="text">Grondoppervlakte:</div><div class="value">820 m²</div></li>
  <li><div class="text">Oppervlakte bewoonbaar:</div><div class="value">190 m²</div></li>
  <li><div class="text">Risicozone voor overstromingen:</div><div class="value">Nee</div></li>
  <li><div class="text">Zwembad:</div><div class="value">Ja</div></li>
</ul></div>
<div class="list-gallery-property-v2">
  <a href="https://cms.dnavastgoed.be/img/1.jpg"></a>
  <a href="https://cms.dnavastgoed.be/img/2.jpg"></a>
  <a href="https://cms.dnavastgoed.be/img/1.jpg"></a>
  <a></a>
</div>
</body></html>`

var rw = discovery.Rewrite{From: "https://cms.dnavastgoed.be", To: "https://dnavastgoed.be"}

func parse(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtract_Fields(t *testing.T) {
	l := Extract(parse(t, page), "https://cms.dnavastgoed.be/pand/villa/", rw)

	assert.Equal(t, "https://dnavastgoed.be/pand/villa/", l.URL)
	assert.Equal(t, "Ruime villa met tuin", l.Name)
	assert.Equal(t, "Mooie villa. Instapklaar.", l.Description)
	assert.Equal(t, "Kerkstraat 12, 9000 Gent", l.Location)
	assert.Equal(t, "245 kWh/m²", l.Energy)
	assert.Equal(t, "Woning", l.Type)
	assert.Equal(t, "€ 395.000", l.Price)
	assert.Equal(t, "Te Koop", l.Status)
	assert.Equal(t, "3", l.Bedrooms)
	assert.Equal(t, "820 m²", l.LotArea)
	assert.Equal(t, "190 m²", l.LivingArea)
	assert.Equal(t, "Nee", l.RisicoOverstroming)
	assert.Empty(t, l.Rooms)
}

func TestExtract_GalleryKeepsOrderAndDuplicates(t *testing.T) {
	l := Extract(parse(t, page), "https://cms.dnavastgoed.be/pand/villa/", rw)
	assert.Equal(t, []string{
		"https://dnavastgoed.be/img/1.jpg",
		"https://dnavastgoed.be/img/2.jpg",
		"https://dnavastgoed.be/img/1.jpg",
	}, []string(l.Images))
}

func TestExtract_EmptyDocument(t *testing.T) {
	l := Extract(parse(t, "<html><body><p>404</p></body></html>"), "https://dnavastgoed.be/x", rw)
	assert.Equal(t, "https://dnavastgoed.be/x", l.URL)
	assert.Empty(t, l.Name)
	assert.Empty(t, l.Price)
	assert.Empty(t, l.Images)
}

func TestExtract_NilDocument(t *testing.T) {
	l := Extract(nil, "https://dnavastgoed.be/x", rw)
	assert.Equal(t, "https://dnavastgoed.be/x", l.URL)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	f := &Fetcher{}
	doc, err := f.Fetch(context.Background(), srv.URL+"/pand/villa")
	require.NoError(t, err)
	assert.Equal(t, "Woning", Extract(doc, srv.URL, rw).Type)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	assert.Error(t, err)
}
