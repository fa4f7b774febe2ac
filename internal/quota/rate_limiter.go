package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter caps advice requests per client in a fixed window. A nil
// limiter allows everything.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    *zap.Logger
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log *zap.Logger) *RateLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RateLimiter{rdb: rdb, limit: limit, window: window, log: log}
}

func adviceKey(client string) string {
	return fmt.Sprintf("rate:advice:%s", client)
}

// AllowAdvice records one advice request for client and reports whether it
// is within the limit. Redis errors are logged and the request is allowed.
func (rl *RateLimiter) AllowAdvice(ctx context.Context, client string) bool {
	if rl == nil || rl.rdb == nil {
		return true
	}

	key := adviceKey(client)
	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		rl.log.Warn("Rate limiter unavailable, allowing request", zap.String("client", client), zap.Error(err))
		return true
	}

	// Set expiration if first time
	if count == 1 {
		if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
			rl.log.Warn("Failed to set rate limit window", zap.String("key", key), zap.Error(err))
		}
	}

	return count <= int64(rl.limit)
}
