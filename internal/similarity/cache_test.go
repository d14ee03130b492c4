package similarity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("m", "hello")
	assert.Equal(t, k1, CacheKey("m", "hello"))
	assert.NotEqual(t, k1, CacheKey("other", "hello"))
	assert.NotEqual(t, k1, CacheKey("m", "hello!"))
	assert.Contains(t, k1, "m:")
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			c.Set(ctx, key, []float32{float32(i)})
			_, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	c := NewRedisCacheFromClient(client, "", 0, nil)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	want := []float32{0.25, -1.5, 3}
	c.Set(ctx, "k", want)

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewRedisCacheFromClient(client, "p:", 0, nil)

	require.NoError(t, mr.Set("p:k", "abc"))

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_TTL(t *testing.T) {
	ctx := context.Background()
	mr, client := setupRedis(t)
	c := NewRedisCacheFromClient(client, "p:", time.Minute, nil)

	c.Set(ctx, "k", []float32{1})
	assert.True(t, mr.Exists("p:k"))

	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNewRedisCache(t *testing.T) {
	mr, _ := setupRedis(t)

	c, err := NewRedisCache(context.Background(), RedisOptions{Addr: mr.Addr()}, nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	c.Set(context.Background(), "k", []float32{2})
	assert.True(t, mr.Exists("resume-ranker:vec:k"))
}

func TestRedisCache_WithEmbeddingBackend(t *testing.T) {
	ctx := context.Background()
	_, client := setupRedis(t)
	stub := &stubEmbedder{}

	first := NewEmbedding(stub, NewRedisCacheFromClient(client, "", 0, nil), nil)
	first.Similarity(ctx, "a", "b")

	// a second backend sharing the same Redis reuses the stored vectors
	second := NewEmbedding(stub, NewRedisCacheFromClient(client, "", 0, nil), nil)
	second.Similarity(ctx, "a", "b")

	assert.Equal(t, 1, stub.calls)
}
