// Package proximity answers "which postal codes lie within r km of zip".
package proximity

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"vastgoed-sync/internal/domain"
)

// EarthRadiusKM is the mean earth radius used by Distance.
const EarthRadiusKM = 6371.0

// Index is built once and never mutated, so it is safe for concurrent use.
type Index struct {
	codes []domain.PostalCode
	byZip map[string]domain.PostalCode
}

// New builds an index. The first entry wins when a zip appears twice.
func New(codes []domain.PostalCode) *Index {
	idx := &Index{
		codes: make([]domain.PostalCode, 0, len(codes)),
		byZip: make(map[string]domain.PostalCode, len(codes)),
	}
	for _, c := range codes {
		c.Zip = strings.TrimSpace(c.Zip)
		if _, dup := idx.byZip[c.Zip]; dup || c.Zip == "" {
			continue
		}
		idx.byZip[c.Zip] = c
		idx.codes = append(idx.codes, c)
	}
	return idx
}

// Read decodes a JSON array of postal codes.
func Read(r io.Reader) (*Index, error) {
	var codes []domain.PostalCode
	if err := json.NewDecoder(r).Decode(&codes); err != nil {
		return nil, fmt.Errorf("decode postal codes: %w", err)
	}
	return New(codes), nil
}

// Load reads the postal code file at path.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open postal codes: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func (idx *Index) Len() int { return len(idx.codes) }

// Lookup returns the entry for zip.
func (idx *Index) Lookup(zip string) (domain.PostalCode, bool) {
	c, ok := idx.byZip[strings.TrimSpace(zip)]
	return c, ok
}

// Within returns every zip whose distance from origin is at most radiusKM,
// origin included. An unknown origin yields an empty set.
func (idx *Index) Within(origin string, radiusKM float64) map[string]struct{} {
	out := map[string]struct{}{}
	o, ok := idx.Lookup(origin)
	if !ok || radiusKM < 0 {
		return out
	}
	for _, c := range idx.codes {
		if Distance(o.Lat, o.Lng, c.Lat, c.Lng) <= radiusKM {
			out[c.Zip] = struct{}{}
		}
	}
	return out
}

// Distance is the great-circle distance in km (spherical law of cosines).
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}
	lat1r, lat2r := radians(lat1), radians(lat2)
	dLng := radians(lng2 - lng1)
	x := math.Sin(lat1r)*math.Sin(lat2r) + math.Cos(lat1r)*math.Cos(lat2r)*math.Cos(dLng)
	x = math.Max(-1, math.Min(1, x))
	return math.Acos(x) * EarthRadiusKM
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
