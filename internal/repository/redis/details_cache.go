package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	models "webuddhist/internal/domain/models/recitation"
	recitationSvc "webuddhist/internal/domain/services/recitation"
)

// DetailsCache stores recitation details as JSON strings with a TTL.
// Backend failures are logged and reported as misses.
type DetailsCache struct {
	rdb    goredis.Cmdable
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewDetailsCache creates a Redis-backed details cache
func NewDetailsCache(rdb goredis.Cmdable, ttl time.Duration, prefix string, logger *slog.Logger) recitationSvc.DetailsCache {
	return &DetailsCache{
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
		logger: logger.With("component", "redis_details_cache"),
	}
}

// Get returns the cached response for (textID, req)
func (c *DetailsCache) Get(ctx context.Context, textID string, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	key := recitationSvc.DetailsCacheKey(c.prefix, textID, req)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var resp models.RecitationDetailsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Warn("bad cached payload", "key", key, "error", err)
		return nil, false
	}

	return &resp, true
}

// Set stores resp under (textID, req) with the configured TTL
func (c *DetailsCache) Set(ctx context.Context, textID string, req *models.RecitationDetailsRequest, resp *models.RecitationDetailsResponse) {
	if c == nil || c.rdb == nil || resp == nil {
		return
	}

	key := recitationSvc.DetailsCacheKey(c.prefix, textID, req)
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}
