package quota

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_NilAllowsEverything(t *testing.T) {
	var rl *RateLimiter
	for i := 0; i < 10; i++ {
		assert.True(t, rl.AllowAdvice(context.Background(), "127.0.0.1"))
	}

	assert.True(t, NewRateLimiter(nil, 1, time.Minute, nil).AllowAdvice(context.Background(), "127.0.0.1"))
}

func TestRateLimiter_AllowsWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	rl := NewRateLimiter(rdb, 1, time.Minute, nil)
	assert.True(t, rl.AllowAdvice(context.Background(), "10.0.0.1"))
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, "127.0.0.1:1", "", 0)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestAdviceKey(t *testing.T) {
	assert.Equal(t, "rate:advice:10.0.0.1", adviceKey("10.0.0.1"))
}
