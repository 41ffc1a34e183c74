package mem

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLoginAttempts is the distributed variant of LoginAttemptStore, for
// deployments with more than one API instance. The block window maps onto
// the key TTL, refreshed on every failure.
type RedisLoginAttempts struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginAttempts(client *redis.Client, maxAttempts int, window time.Duration) *RedisLoginAttempts {
	return &RedisLoginAttempts{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func loginAttemptKey(email string) string {
	return "login_attempts:" + email
}

func (s *RedisLoginAttempts) RecordFailure(email string) {
	ctx := context.Background()
	key := loginAttemptKey(email)

	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Failed to record login failure for %s: %v", email, err)
	}
}

func (s *RedisLoginAttempts) IsBlocked(email string) bool {
	val, err := s.client.Get(context.Background(), loginAttemptKey(email)).Result()
	if err != nil {
		// missing key and transient redis errors both read as "not blocked"
		return false
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		return false
	}
	return count >= s.maxAttempts
}

func (s *RedisLoginAttempts) Reset(email string) {
	if err := s.client.Del(context.Background(), loginAttemptKey(email)).Err(); err != nil {
		log.Printf("Failed to reset login attempts for %s: %v", email, err)
	}
}
