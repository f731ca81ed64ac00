package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/grocerylist/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{RedisURL: url, ServiceName: "grocerylist-test"}
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(newTestConfig("redis://:secret@cache.internal:6380/2"))
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "grocerylist-test", opts.ClientName)
	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
}

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig("not-a-valid-url"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse url")

	_, err = NewRedisClient(context.Background(), newTestConfig("redis://localhost:19999"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping localhost:19999")
}

// Runs only when REDIS_URL points at a live server.
func TestRedisClient_Integration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(context.Background(), newTestConfig(redisURL))
	require.NoError(t, err)

	require.NoError(t, rc.Ping(context.Background()))
	require.NotNil(t, rc.Client())
	require.NoError(t, rc.Close())
}
