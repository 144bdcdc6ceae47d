package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit takes the lock for key if it is free. A nil client
// disables limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, key string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	wasSet, err := rdb.SetNX(ctx, "rate_limit:"+key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func ClearRateLimit(ctx context.Context, rdb *redis.Client, key string) error {
	if rdb == nil {
		return nil
	}
	_, err := rdb.Del(ctx, "rate_limit:"+key).Result()
	return err
}
