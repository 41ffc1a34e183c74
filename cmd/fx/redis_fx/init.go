package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"voya/internal/infra"
)

var Module = fx.Provide(
	provideRedisClient)

func provideRedisClient() *redis.Client {
	return infra.InitRedis()
}
