// README: Redis cache for resolved zones.
package zones

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// Cache stores address resolutions in Redis. Cache errors are logged and
// swallowed; resolution must keep working when Redis is down.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func cacheKey(address string) string {
	return "zone:addr:" + strings.ToLower(strings.TrimSpace(address))
}

func (c *Cache) Get(ctx context.Context, address string) (*Resolution, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(address)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[zones] cache get: %v", err)
		}
		return nil, false
	}
	var res Resolution
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *Cache) Set(ctx context.Context, address string, res *Resolution) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(address), raw, cacheTTL).Err(); err != nil {
		log.Printf("[zones] cache set: %v", err)
	}
}
