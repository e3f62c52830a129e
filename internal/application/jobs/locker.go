// Package jobs keeps each batch job single-flight.
package jobs

import (
	"context"
	"sync"
	"time"

	"vastgoed-sync/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix  = "jobs:lock:"
	DefaultTTL = 30 * time.Minute
)

var ErrJobRunning = apperrors.Conflict("Job is already running", nil)

// Locker hands out one lock per job name.
type Locker interface {
	Acquire(ctx context.Context, name string) (release func(), err error)
}

// RedisLocker works across processes. The TTL frees a lock whose holder died.
type RedisLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *RedisLocker) Acquire(ctx context.Context, name string) (func(), error) {
	ttl := l.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, apperrors.Internal("acquiring job lock", err)
	}
	if !ok {
		return nil, ErrJobRunning
	}
	return func() {
		// the request context may be gone by now
		if err := releaseScript.Run(context.Background(), l.Client, []string{key}, token).Err(); err != nil {
			log.Warn().Err(err).Str("job", name).Msg("releasing job lock")
		}
	}, nil
}

// LocalLocker is used when no redis is configured.
type LocalLocker struct {
	mu      sync.Mutex
	running map[string]bool
}

func (l *LocalLocker) Acquire(_ context.Context, name string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running == nil {
		l.running = map[string]bool{}
	}
	if l.running[name] {
		return nil, ErrJobRunning
	}
	l.running[name] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.running, name)
			l.mu.Unlock()
		})
	}, nil
}

// Run executes fn while holding the lock for name.
func Run(ctx context.Context, l Locker, name string, fn func(ctx context.Context) ([]string, error)) ([]string, error) {
	release, err := l.Acquire(ctx, name)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	lines, err := fn(ctx)
	log.Info().Str("job", name).Int("lines", len(lines)).Dur("took", time.Since(start)).Err(err).Msg("job finished")
	return lines, err
}
