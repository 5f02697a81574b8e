package service

import dom "linkpulse/internal/services/analyzer/domain"

// viewCache is a bounded result cache keyed by the canonical filter tuple
// Eviction is bulk clear-oldest: once the cap is exceeded the oldest half
// of the insertion order is dropped, strict LRU is deliberately not needed
type viewCache struct {
	cap     int
	entries map[string]dom.QueryResult
	order   []string // insertion order, repeats are fine, evicted lazily
}

func newViewCache(capacity int) *viewCache {
	return &viewCache{
		cap:     capacity,
		entries: map[string]dom.QueryResult{},
	}
}

func (c *viewCache) get(key string) (dom.QueryResult, bool) {
	res, ok := c.entries[key]
	return res, ok
}

func (c *viewCache) put(key string, res dom.QueryResult) {
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = res
	if len(c.entries) <= c.cap {
		return
	}
	drop := len(c.order) / 2
	for _, k := range c.order[:drop] {
		delete(c.entries, k)
	}
	c.order = append([]string(nil), c.order[drop:]...)
}

func (c *viewCache) clear() {
	c.entries = map[string]dom.QueryResult{}
	c.order = nil
}
