package search

import (
	"sync"
	"time"
)

// rankCache holds ranked ID lists with a TTL. It stores identifiers only,
// article data is always resolved live so a cached list never serves stale
// fields.
type rankCache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]rankEntry
	now     func() time.Time
}

type rankEntry struct {
	ids     []string
	expires time.Time
}

func newRankCache(ttl time.Duration) *rankCache {
	return &rankCache{ttl: ttl, entries: make(map[string]rankEntry), now: time.Now}
}

func (c *rankCache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.ids, true
}

func (c *rankCache) set(key string, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = rankEntry{ids: ids, expires: c.now().Add(c.ttl)}
}

func (c *rankCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// explainCache holds generated explanations keyed by article ID
type explainCache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]explainEntry
	now     func() time.Time
}

type explainEntry struct {
	text    string
	expires time.Time
}

func newExplainCache(ttl time.Duration) *explainCache {
	return &explainCache{ttl: ttl, entries: make(map[string]explainEntry), now: time.Now}
}

func (c *explainCache) get(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[id]
	if !ok {
		return "", false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, id)
		return "", false
	}
	return entry.text, true
}

func (c *explainCache) set(id, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = explainEntry{text: text, expires: c.now().Add(c.ttl)}
}
