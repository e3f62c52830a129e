package proximity

import (
	"strings"
	"testing"

	"vastgoed-sync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codes = []domain.PostalCode{
	{Zip: "2000", City: "Antwerpen", Lat: 51.2194, Lng: 4.4025},
	{Zip: "9000", City: "Gent", Lat: 51.0543, Lng: 3.7174},
	{Zip: "9100", City: "Sint-Niklaas", Lat: 51.1650, Lng: 4.1437},
	{Zip: "2018", City: "Antwerpen", Lat: 51.2050, Lng: 4.4203},
}

func TestDistance_Reference(t *testing.T) {
	d := Distance(51.2194, 4.4025, 51.0543, 3.7174)
	assert.InDelta(t, 51.0, d, 1.0)
}

func TestDistance_ZeroAndSymmetric(t *testing.T) {
	assert.Equal(t, 0.0, Distance(51.2194, 4.4025, 51.2194, 4.4025))
	a := Distance(51.2194, 4.4025, 51.1650, 4.1437)
	b := Distance(51.1650, 4.1437, 51.2194, 4.4025)
	assert.InDelta(t, a, b, 1e-9)
}

func TestWithin(t *testing.T) {
	idx := New(codes)

	zero := idx.Within("2000", 0)
	assert.Equal(t, map[string]struct{}{"2000": {}}, zero)

	near := idx.Within("2000", 25)
	assert.Contains(t, near, "2000")
	assert.Contains(t, near, "2018")
	assert.Contains(t, near, "9100")
	assert.NotContains(t, near, "9000")

	assert.Contains(t, idx.Within("2000", 100), "9000")
	assert.Empty(t, idx.Within("1000", 50))
}

func TestRead(t *testing.T) {
	idx, err := Read(strings.NewReader(`[{"zip":"9000","city":"Gent","lat":51.05,"lng":3.71},{"zip":"9000","city":"Dup","lat":0,"lng":0}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
	c, ok := idx.Lookup("9000")
	require.True(t, ok)
	assert.Equal(t, "Gent", c.City)

	_, err = Read(strings.NewReader(`{`))
	assert.Error(t, err)
}
