package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAttemptsBlocksAfterMaxFailures(t *testing.T) {
	store := NewLoginAttempts(3, time.Minute)

	store.RecordFailure("a@example.com")
	store.RecordFailure("a@example.com")
	assert.False(t, store.IsBlocked("a@example.com"))

	store.RecordFailure("a@example.com")
	assert.True(t, store.IsBlocked("a@example.com"))

	// other emails are unaffected
	assert.False(t, store.IsBlocked("b@example.com"))
}

func TestLoginAttemptsResetClearsBlock(t *testing.T) {
	store := NewLoginAttempts(2, time.Minute)

	store.RecordFailure("a@example.com")
	store.RecordFailure("a@example.com")
	require.True(t, store.IsBlocked("a@example.com"))

	store.Reset("a@example.com")
	assert.False(t, store.IsBlocked("a@example.com"))
}

func TestLoginAttemptsWindowExpiry(t *testing.T) {
	store := NewLoginAttempts(2, 20*time.Millisecond)

	store.RecordFailure("a@example.com")
	store.RecordFailure("a@example.com")
	require.True(t, store.IsBlocked("a@example.com"))

	time.Sleep(40 * time.Millisecond)
	assert.False(t, store.IsBlocked("a@example.com"))

	// expiry dropped the stale count, so one new failure is not enough
	store.RecordFailure("a@example.com")
	assert.False(t, store.IsBlocked("a@example.com"))
}

func TestLoginAttemptsConcurrentAccess(t *testing.T) {
	store := NewLoginAttempts(5, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.RecordFailure("a@example.com")
			store.IsBlocked("a@example.com")
		}()
	}
	wg.Wait()

	assert.True(t, store.IsBlocked("a@example.com"))
}

func newRedisStore(t *testing.T, maxAttempts int, window time.Duration) (*RedisLoginAttempts, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLoginAttempts(client, maxAttempts, window), server
}

func TestRedisLoginAttemptsBlocksAfterMaxFailures(t *testing.T) {
	store, _ := newRedisStore(t, 3, time.Minute)

	store.RecordFailure("a@example.com")
	store.RecordFailure("a@example.com")
	assert.False(t, store.IsBlocked("a@example.com"))

	store.RecordFailure("a@example.com")
	assert.True(t, store.IsBlocked("a@example.com"))

	store.Reset("a@example.com")
	assert.False(t, store.IsBlocked("a@example.com"))
}

func TestRedisLoginAttemptsWindowExpiry(t *testing.T) {
	store, server := newRedisStore(t, 2, time.Minute)

	store.RecordFailure("a@example.com")
	store.RecordFailure("a@example.com")
	require.True(t, store.IsBlocked("a@example.com"))

	server.FastForward(2 * time.Minute)
	assert.False(t, store.IsBlocked("a@example.com"))
}

func TestRedisLoginAttemptsUnavailableReadsAsNotBlocked(t *testing.T) {
	store, server := newRedisStore(t, 1, time.Minute)

	store.RecordFailure("a@example.com")
	require.True(t, store.IsBlocked("a@example.com"))

	server.Close()
	assert.False(t, store.IsBlocked("a@example.com"))
}
