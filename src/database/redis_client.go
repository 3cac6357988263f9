package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis connects the shared Redis client. Redis is optional here: drafts
// and session locks degrade to in-process behaviour when it is absent, so a
// failed connection logs a warning instead of stopping the server.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // e.g. localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Running without Redis.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
