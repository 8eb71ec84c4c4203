package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"agendo/models"
	"agendo/utils"
)

// DefaultCacheTTL is how long a computed slot set stays servable. Entries are
// never invalidated on booking writes by the core itself; the short TTL
// bounds how stale an offer can get. The external write path may call
// Invalidate if it wants stronger freshness.
const DefaultCacheTTL = 5 * time.Minute

// SlotCacheKey identifies one cached slot computation.
type SlotCacheKey struct {
	ProviderID string
	Date       string
	Duration   int
}

func (k SlotCacheKey) String() string {
	return fmt.Sprintf("slots:%s:%s:%d", k.ProviderID, k.Date, k.Duration)
}

// SlotCache is a short-TTL cache for computed slot sets.
type SlotCache interface {
	Get(ctx context.Context, key SlotCacheKey) ([]models.Slot, bool)
	Set(ctx context.Context, key SlotCacheKey, slots []models.Slot, ttl time.Duration)
	// Invalidate drops every cached duration for a provider/date pair.
	Invalidate(ctx context.Context, providerID, date string)
}

// ---------------------------------------------------------------------------
// In-memory implementation.

type memoryEntry struct {
	slots []models.Slot
	timer *time.Timer
}

// MemorySlotCache keeps entries in a map and evicts each one with a scheduled
// timer when its TTL fires, so memory stays bounded even for keys that are
// never queried again.
type MemorySlotCache struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemorySlotCache constructs an empty in-memory slot cache.
func NewMemorySlotCache() *MemorySlotCache {
	return &MemorySlotCache{entries: make(map[string]*memoryEntry)}
}

func (c *MemorySlotCache) Get(_ context.Context, key SlotCacheKey) ([]models.Slot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	out := make([]models.Slot, len(entry.slots))
	copy(out, entry.slots)
	return out, true
}

func (c *MemorySlotCache) Set(_ context.Context, key SlotCacheKey, slots []models.Slot, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	k := key.String()
	stored := make([]models.Slot, len(slots))
	copy(stored, slots)

	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[k]; ok {
		old.timer.Stop()
	}
	c.entries[k] = &memoryEntry{
		slots: stored,
		timer: time.AfterFunc(ttl, func() { c.evict(k) }),
	}
}

func (c *MemorySlotCache) Invalidate(_ context.Context, providerID, date string) {
	prefix := fmt.Sprintf("slots:%s:%s:", providerID, date)
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			entry.timer.Stop()
			delete(c.entries, k)
		}
	}
}

func (c *MemorySlotCache) evict(k string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, k)
}

// ---------------------------------------------------------------------------
// Redis implementation.

// RedisSlotCache stores JSON-encoded slot sets in Redis with a server-side
// TTL, sharing the cache across replicas.
type RedisSlotCache struct {
	client *redis.Client
}

// NewRedisSlotCache constructs a Redis-backed slot cache.
func NewRedisSlotCache(client *redis.Client) *RedisSlotCache {
	return &RedisSlotCache{client: client}
}

func (c *RedisSlotCache) Get(ctx context.Context, key SlotCacheKey) ([]models.Slot, bool) {
	logger := utils.GetLogger()
	raw, err := c.client.Get(ctx, key.String()).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("slot cache read failed", zap.String("key", key.String()), zap.Error(err))
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		logger.Warn("slot cache entry corrupt", zap.String("key", key.String()), zap.Error(err))
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(ctx context.Context, key SlotCacheKey, slots []models.Slot, ttl time.Duration) {
	logger := utils.GetLogger()
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		logger.Warn("slot cache encode failed", zap.String("key", key.String()), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key.String(), payload, ttl).Err(); err != nil {
		logger.Warn("slot cache write failed", zap.String("key", key.String()), zap.Error(err))
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, providerID, date string) {
	logger := utils.GetLogger()
	pattern := fmt.Sprintf("slots:%s:%s:*", providerID, date)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("slot cache delete failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("slot cache scan failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
