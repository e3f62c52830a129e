package geocoding

import (
	"context"
	"errors"
	"strings"
	"time"

	"vastgoed-sync/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cachePrefix = "geocode:"

// CachedGeocoder serves repeated addresses from redis. Only hits are stored,
// so an address without a result is asked again next run.
type CachedGeocoder struct {
	Next  Geocoder
	Redis *redis.Client
	TTL   time.Duration
}

func cacheKey(addr domain.Address) string {
	return cachePrefix + strings.ToLower(strings.Join(strings.Fields(addr.String()), " "))
}

func (c *CachedGeocoder) Lookup(ctx context.Context, addr domain.Address) (Coordinates, bool, error) {
	if c.Redis == nil || addr.IsZero() {
		return c.Next.Lookup(ctx, addr)
	}
	key := cacheKey(addr)

	val, err := c.Redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		if lat, lng, ok := strings.Cut(val, ","); ok {
			return Coordinates{Lat: lat, Lng: lng}, true, nil
		}
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("geocode cache read failed")
	}

	coords, found, err := c.Next.Lookup(ctx, addr)
	if err != nil || !found {
		return coords, found, err
	}
	if err := c.Redis.Set(ctx, key, coords.Lat+","+coords.Lng, c.TTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("geocode cache write failed")
	}
	return coords, true, nil
}
