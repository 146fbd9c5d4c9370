package recitation

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	models "webuddhist/internal/domain/models/recitation"
	recitationSvc "webuddhist/internal/domain/services/recitation"
)

const defaultMemoryCacheEntries = 1024

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryDetailsCache is an in-process DetailsCache used when no Redis is
// configured. Entries are stored encoded so callers never share state.
type MemoryDetailsCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	logger     *slog.Logger
}

// NewMemoryDetailsCache creates an in-process cache. ttl <= 0 disables expiry;
// maxEntries <= 0 uses a default bound.
func NewMemoryDetailsCache(ttl time.Duration, maxEntries int, logger *slog.Logger) *MemoryDetailsCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheEntries
	}
	return &MemoryDetailsCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		logger:     logger.With("component", "memory_details_cache"),
	}
}

var _ recitationSvc.DetailsCache = (*MemoryDetailsCache)(nil)

func (c *MemoryDetailsCache) Get(_ context.Context, textID string, req *models.RecitationDetailsRequest) (*models.RecitationDetailsResponse, bool) {
	key := recitationSvc.DetailsCacheKey("", textID, req)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.expired(entry) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed it
		if current, ok := c.entries[key]; ok && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	var resp models.RecitationDetailsResponse
	if err := json.Unmarshal(entry.payload, &resp); err != nil {
		c.logger.Warn("bad cached payload", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (c *MemoryDetailsCache) Set(_ context.Context, textID string, req *models.RecitationDetailsRequest, resp *models.RecitationDetailsResponse) {
	if resp == nil {
		return
	}

	key := recitationSvc.DetailsCacheKey("", textID, req)
	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}

	entry := memoryEntry{payload: payload}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = entry
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryDetailsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryDetailsCache) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt)
}

// evictLocked drops expired entries, or failing that the entry closest to expiry
func (c *MemoryDetailsCache) evictLocked() {
	var victim string
	var victimExpiry time.Time
	removed := false
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
			removed = true
			continue
		}
		if victim == "" || entry.expiresAt.Before(victimExpiry) {
			victim = key
			victimExpiry = entry.expiresAt
		}
	}
	if !removed && victim != "" {
		delete(c.entries, victim)
	}
}
