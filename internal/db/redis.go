package db

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the optional Redis client. Login lockout is disabled
// when no address is configured.
func InitRedis(addr, password, dbNum string) {
	if addr == "" {
		log.Println("Redis not configured, login lockout is disabled")
		return
	}

	n, _ := strconv.Atoi(dbNum)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       n,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return
	}

	RedisClient = client
	log.Println("Connected to Redis")
}
