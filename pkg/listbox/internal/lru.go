package internal

const defaultMaxCacheSize = 32

// LRU is a small least-recently-used cache. OnEvict runs for every value that
// leaves the cache, whether evicted for capacity, replaced or purged.
type LRU[K comparable, V any] struct {
	entries map[K]V
	order   []K // least recently used first
	maxSize int
	OnEvict func(key K, value V)
}

func NewLRU[K comparable, V any](onEvict func(K, V)) *LRU[K, V] {
	return NewLRUWithSize[K, V](defaultMaxCacheSize, onEvict)
}

func NewLRUWithSize[K comparable, V any](maxSize int, onEvict func(K, V)) *LRU[K, V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[K, V]{
		entries: make(map[K]V, maxSize),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
		OnEvict: onEvict,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *LRU[K, V]) Set(key K, value V) {
	if old, exists := c.entries[key]; exists {
		c.entries[key] = value
		c.moveToEnd(key)
		if c.OnEvict != nil {
			c.OnEvict(key, old)
		}
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

func (c *LRU[K, V]) Len() int {
	return len(c.order)
}

func (c *LRU[K, V]) moveToEnd(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *LRU[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, exists := c.entries[oldest]; exists {
		delete(c.entries, oldest)
		if c.OnEvict != nil {
			c.OnEvict(oldest, v)
		}
	}
}

// Purge drops every entry.
func (c *LRU[K, V]) Purge() {
	for _, k := range c.order {
		if c.OnEvict != nil {
			c.OnEvict(k, c.entries[k])
		}
	}
	c.entries = make(map[K]V, c.maxSize)
	c.order = c.order[:0]
}
