package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		log.Fatal("Error parsing REDIS_URL")
	}

	return redis.NewClient(opts)
}
