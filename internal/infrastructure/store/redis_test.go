package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// fakeRedis is an in-memory stand-in for the go-redis command surface the
// store uses.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	s := &RedisStore{client: fake, ttl: time.Hour}

	require.NoError(t, s.Save(context.Background(), domain.TokenPair{Access: "a1", Refresh: "r1"}))

	pair, err := s.Tokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TokenPair{Access: "a1", Refresh: "r1"}, pair)
	assert.Equal(t, time.Hour, fake.ttls[accessKey])
}

func TestRedisStore_EmptyWhenKeysMissing(t *testing.T) {
	s := &RedisStore{client: newFakeRedis()}

	pair, err := s.Tokens(context.Background())

	require.NoError(t, err)
	assert.True(t, pair.Empty())
}

func TestRedisStore_SetAccessKeepsRefresh(t *testing.T) {
	fake := newFakeRedis()
	s := &RedisStore{client: fake}
	require.NoError(t, s.Save(context.Background(), domain.TokenPair{Access: "a1", Refresh: "r1"}))

	require.NoError(t, s.SetAccess(context.Background(), "a2"))

	pair, err := s.Tokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TokenPair{Access: "a2", Refresh: "r1"}, pair)
}

func TestRedisStore_ClearDeletesBothKeys(t *testing.T) {
	fake := newFakeRedis()
	s := &RedisStore{client: fake}
	require.NoError(t, s.Save(context.Background(), domain.TokenPair{Access: "a1", Refresh: "r1"}))

	require.NoError(t, s.Clear(context.Background()))

	pair, err := s.Tokens(context.Background())
	require.NoError(t, err)
	assert.True(t, pair.Empty())
	assert.Empty(t, fake.values)
}
