// README: Redis-backed cache for successful tool results.
package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache reuses successful tool invocations for a short TTL so repeated
// identical lookups skip the gateway. A nil *Cache is a valid no-op cache,
// and redis errors are swallowed: caching is never visible to callers.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache wraps rdb; returns nil (disabled) when rdb is nil.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, tool string, args map[string]any) (ToolResult, bool) {
	if c == nil {
		return ToolResult{}, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey(tool, args)).Bytes()
	if err != nil {
		return ToolResult{}, false
	}
	var res ToolResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return ToolResult{}, false
	}
	return res, true
}

func (c *Cache) Put(ctx context.Context, tool string, args map[string]any, res ToolResult) {
	if c == nil || !res.Succeeded {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey(tool, args), raw, c.ttl).Err()
}

// cacheKey hashes the sorted argument set so equivalent invocations collide.
func cacheKey(tool string, args map[string]any) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v;", k, args[k])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return "trailhead:tool:" + tool + ":" + hex.EncodeToString(sum[:8])
}
