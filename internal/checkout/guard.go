package checkout

import (
	"context"
	"log"
	"sync"
	"time"

	"matrace_backend/internal/database"
)

// MemoryGuard tracks in-flight checkouts inside one process.
type MemoryGuard struct {
	inflight sync.Map
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{}
}

func (g *MemoryGuard) TryAcquire(cartID string) bool {
	_, loaded := g.inflight.LoadOrStore(cartID, struct{}{})
	return !loaded
}

func (g *MemoryGuard) Release(cartID string) {
	g.inflight.Delete(cartID)
}

// InflightTTL caps how long a checkout can hold the Redis flag. A crashed
// attempt must not wedge the cart forever.
const InflightTTL = 2 * time.Minute

// RedisGuard tracks in-flight checkouts across instances with SETNX + TTL.
type RedisGuard struct{}

func NewRedisGuard() *RedisGuard {
	return &RedisGuard{}
}

func (g *RedisGuard) TryAcquire(cartID string) bool {
	ok, err := database.Redis.SetNX(context.Background(), "checkout_inflight:"+cartID, "1", InflightTTL).Result()
	if err != nil {
		// Fail open when Redis is unreachable.
		log.Printf("⚠️ In-flight guard check failed for %s: %v", cartID, err)
		return true
	}
	return ok
}

func (g *RedisGuard) Release(cartID string) {
	if err := database.Redis.Del(context.Background(), "checkout_inflight:"+cartID).Err(); err != nil {
		log.Printf("⚠️ In-flight guard release failed for %s: %v", cartID, err)
	}
}
