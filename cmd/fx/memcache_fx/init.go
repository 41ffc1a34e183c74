package memcache_fx

import (
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	mem "voya/pkg/memcache"
)

var Module = fx.Provide(provideLoginAttemptStore)

// provideLoginAttemptStore backs the login throttle with redis when
// LOGIN_ATTEMPT_STORE=redis, otherwise with process-local memory.
func provideLoginAttemptStore(client *redis.Client) mem.LoginAttemptStore {
	if os.Getenv("LOGIN_ATTEMPT_STORE") == "redis" {
		return mem.NewRedisLoginAttempts(client, mem.DefaultMaxLoginAttempts, mem.DefaultBlockWindow)
	}
	return mem.NewLoginAttempts(mem.DefaultMaxLoginAttempts, mem.DefaultBlockWindow)
}
