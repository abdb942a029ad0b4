package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// memCache is a map-backed Cache for exercising PostPages end to end.
type memCache struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memCache) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (m *memCache) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func (m *memCache) Close() error { return nil }

func TestPostPagesDisabled(t *testing.T) {
	require.Nil(t, NewPostPages(nil, time.Minute))
	require.Nil(t, NewPostPages(newMemCache(), 0))

	var p *PostPages
	ctx := context.Background()
	key, err := p.Key(ctx, 1, 10)
	require.NoError(t, err)
	require.Empty(t, key)
	_, ok, err := p.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, p.Set(ctx, key, []byte("[]")))
	require.NoError(t, p.Invalidate(ctx))
}

func TestPostPagesRoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	mem := newMemCache()
	p := NewPostPages(mem, 30*time.Second)

	key, err := p.Key(ctx, 2, 5)
	require.NoError(t, err)
	require.Equal(t, "posts:published:v0:page:2:per:5", key)

	_, ok, err := p.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, p.Set(ctx, key, []byte(`[{"id":1}]`)))
	require.Equal(t, 30*time.Second, mem.ttls[key])

	body, ok, err := p.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, string(body))

	require.NoError(t, p.Invalidate(ctx))
	fresh, err := p.Key(ctx, 2, 5)
	require.NoError(t, err)
	require.Equal(t, "posts:published:v1:page:2:per:5", fresh)
	_, ok, err = p.Get(ctx, fresh)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPostPagesErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	p := NewPostPages(&FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", boom) },
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", boom)
		},
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(0, boom) },
	}, time.Minute)

	_, err := p.Key(ctx, 1, 10)
	require.ErrorIs(t, err, boom)
	_, _, err = p.Get(ctx, "k")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, p.Set(ctx, "k", nil), boom)
	require.ErrorIs(t, p.Invalidate(ctx), boom)
}

func TestPostPagesBypassAfterFailedInvalidate(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	now = func() time.Time { return clock }
	t.Cleanup(func() { now = time.Now })

	mem := newMemCache()
	incrErr := errors.New("incr failed")
	p := NewPostPages(&FakeCache{
		GetFn:  mem.Get,
		SetFn:  mem.Set,
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(0, incrErr) },
	}, 30*time.Second)

	key, err := p.Key(ctx, 1, 10)
	require.NoError(t, err)
	require.NoError(t, p.Set(ctx, key, []byte(`[{"id":1,"published":true}]`)))

	require.ErrorIs(t, p.Invalidate(ctx), incrErr)

	// the stale page must not be served while it can still be live
	key, err = p.Key(ctx, 1, 10)
	require.NoError(t, err)
	require.Empty(t, key)
	_, ok, err := p.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	clock = clock.Add(30 * time.Second)
	key, err = p.Key(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, "posts:published:v0:page:1:per:10", key)
}
