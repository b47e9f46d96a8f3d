// Package redis memoizes Availability Oracle reads for read-only projections
// that run outside a write transaction (§4.14). It never substitutes for the
// transactional read a write path performs under the lot's row lock.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodtrace/lotcore/common/mredis"
	"github.com/foodtrace/lotcore/domain"
)

// DefaultTTL bounds how stale a cached availability read may be before a
// report falls back to the database regardless of invalidation.
const DefaultTTL = 5 * time.Second

// AvailabilityCache is a best-effort read-through cache keyed avail:{lot_id}.
// A cache miss, a decode failure, or an unreachable Redis are all treated as
// "not cached" rather than surfaced as errors.
type AvailabilityCache struct {
	conn *mredis.RedisConnection
}

func NewAvailabilityCache(conn *mredis.RedisConnection) *AvailabilityCache {
	return &AvailabilityCache{conn: conn}
}

func cacheKey(lotID int64) string {
	return fmt.Sprintf("avail:%d", lotID)
}

// Get returns the cached availability for lotID, if present and unexpired.
func (c *AvailabilityCache) Get(ctx context.Context, lotID int64) (*domain.Availability, bool) {
	if c == nil || c.conn == nil {
		return nil, false
	}

	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return nil, false
	}

	raw, err := client.Get(ctx, cacheKey(lotID)).Bytes()
	if err != nil {
		return nil, false
	}

	var avail domain.Availability
	if err := json.Unmarshal(raw, &avail); err != nil {
		return nil, false
	}

	return &avail, true
}

// Set stores avail under its lot's cache key with DefaultTTL.
func (c *AvailabilityCache) Set(ctx context.Context, avail *domain.Availability) {
	if c == nil || c.conn == nil {
		return
	}

	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return
	}

	body, err := json.Marshal(avail)
	if err != nil {
		return
	}

	client.Set(ctx, cacheKey(avail.LotID), body, DefaultTTL)
}

// Invalidate drops the cached availability for lotID. Called by every
// command that changes a lot's on-hand or reserved quantity.
func (c *AvailabilityCache) Invalidate(ctx context.Context, lotID int64) {
	if c == nil || c.conn == nil {
		return
	}

	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return
	}

	client.Del(ctx, cacheKey(lotID))
}
