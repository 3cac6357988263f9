package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	DB "Backend-Adventura-001/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Without Redis (development mode) it is nil and token state is not
// enforced.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken keeps a backoffice refresh token with an expiration.
// Returns nil if Redis is not available (development mode).
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized")
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Set(Ctx, key, refreshToken, expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken checks a presented refresh token against the stored
// one. Returns true if Redis is not available (development mode).
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized")
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken removes the stored refresh token (used on logout).
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized")
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Del(Ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// BlacklistToken marks an access token as revoked until it would have
// expired anyway.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized")
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(Ctx, key, "1", expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether an access token has been revoked.
// Returns false if Redis is not available (development mode).
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized")
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
