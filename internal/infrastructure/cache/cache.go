package cache

import (
	"sync"
	"time"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
)

// item holds a cached report document with expiration
type item struct {
	document   *entities.ReportDocument
	expiration int64
}

// ReportCache is a simple in-memory cache for assembled report documents.
// Report definitions are never mutated after creation, so a short TTL only
// has to absorb new responses arriving inside the window.
type ReportCache struct {
	items map[uint]item
	ttl   time.Duration
	mu    sync.RWMutex
}

// New creates a new report cache with the given TTL
func New(ttl time.Duration) *ReportCache {
	cache := &ReportCache{
		items: make(map[uint]item),
		ttl:   ttl,
	}

	// Start a background goroutine to clean expired items
	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set stores the assembled document for a report id
func (c *ReportCache) Set(reportID uint, document *entities.ReportDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[reportID] = item{
		document:   document,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get retrieves the cached document for a report id
// Returns the document and a boolean indicating if it was found
func (c *ReportCache) Get(reportID uint) (*entities.ReportDocument, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, found := c.items[reportID]
	if !found {
		return nil, false
	}

	// Check if the item has expired
	if time.Now().UnixNano() > cached.expiration {
		return nil, false
	}

	return cached.document, true
}

// Delete removes the cached document for a report id
func (c *ReportCache) Delete(reportID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, reportID)
}

// DeleteExpired removes all expired items from the cache
func (c *ReportCache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.expiration {
			delete(c.items, k)
		}
	}
}
