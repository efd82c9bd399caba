package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const analyticsKey = "analytics:report"

var ttlAnalytics = 5 * time.Minute

// rdb stays nil when REDIS_ADDR is not configured; every helper is a
// no-op then.
var rdb *redis.Client

func Init(addr string) *redis.Client {
	rdb = redis.NewClient(&redis.Options{Addr: addr})
	return rdb
}

func GetAnalytics(ctx context.Context) ([]byte, bool) {
	if rdb == nil {
		return nil, false
	}
	payload, err := rdb.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func SetAnalytics(ctx context.Context, payload []byte) {
	if rdb == nil {
		return
	}
	rdb.Set(ctx, analyticsKey, payload, ttlAnalytics)
}

func InvalidateAnalytics(ctx context.Context) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, analyticsKey)
}
