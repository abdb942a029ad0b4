package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Published-post pages are stored under a version number. Any mutation that
// can change what a page shows bumps the version, so old pages are never read
// again and simply expire.
const publishedVersionKey = "posts:published:version"

var now = time.Now

// PostPages caches rendered pages of published posts. A nil *PostPages or one
// without a backing Cache is a valid, always-missing cache.
type PostPages struct {
	cache Cache
	ttl   time.Duration

	// unix nanos until which pages are neither read nor written, set when a
	// version bump fails and pages written before it may still be live
	bypassUntil atomic.Int64
}

func NewPostPages(c Cache, ttl time.Duration) *PostPages {
	if c == nil || ttl <= 0 {
		return nil
	}
	return &PostPages{cache: c, ttl: ttl}
}

// Key returns the key a page is stored under for the current version. It is
// empty, meaning "do not cache", while a failed Invalidate is still in effect.
func (p *PostPages) Key(ctx context.Context, page, perPage int) (string, error) {
	if p == nil || p.bypassed() {
		return "", nil
	}
	version, err := p.cache.Get(ctx, publishedVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("PostPages.Key: %w", err)
	}
	return fmt.Sprintf("posts:published:v%d:page:%d:per:%d", version, page, perPage), nil
}

// Get returns the cached page body stored under key. ok is false on a miss.
func (p *PostPages) Get(ctx context.Context, key string) (body []byte, ok bool, err error) {
	if p == nil || key == "" {
		return nil, false, nil
	}
	body, err = p.cache.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("PostPages.Get: %w", err)
	}
	return body, true, nil
}

func (p *PostPages) Set(ctx context.Context, key string, body []byte) error {
	if p == nil || key == "" {
		return nil
	}
	if err := p.cache.Set(ctx, key, body, p.ttl).Err(); err != nil {
		return fmt.Errorf("PostPages.Set: %w", err)
	}
	return nil
}

// Invalidate makes every cached page stale.
func (p *PostPages) Invalidate(ctx context.Context) error {
	if p == nil {
		return nil
	}
	if err := p.cache.Incr(ctx, publishedVersionKey).Err(); err != nil {
		// every page still cached was written within the last ttl
		p.bypassUntil.Store(now().Add(p.ttl).UnixNano())
		return fmt.Errorf("PostPages.Invalidate: %w", err)
	}
	return nil
}

func (p *PostPages) bypassed() bool {
	return now().UnixNano() < p.bypassUntil.Load()
}
