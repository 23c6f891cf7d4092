package calendar

import (
	"container/list"
	"sync"
	"time"
)

// cache holds transaction batches for a limited time. When full, the least
// recently used entry is evicted.
type cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	now     func() time.Time
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	key          string
	transactions []Transaction
	expiresAt    time.Time
}

func newCache(ttl time.Duration, maxSize int, now func() time.Time) *cache {
	return &cache{
		ttl:     ttl,
		maxSize: maxSize,
		now:     now,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *cache) get(key string) ([]Transaction, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if !c.now().Before(entry.expiresAt) {
		c.remove(elem)
		return nil, false
	}

	c.lru.MoveToFront(elem)
	return entry.transactions, true
}

func (c *cache) set(key string, transactions []Transaction) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{
		key:          key,
		transactions: transactions,
		expiresAt:    c.now().Add(c.ttl),
	}

	if elem, ok := c.items[key]; ok {
		elem.Value = entry
		c.lru.MoveToFront(elem)
		return
	}

	c.items[key] = c.lru.PushFront(entry)

	if c.maxSize > 0 && c.lru.Len() > c.maxSize {
		c.remove(c.lru.Back())
	}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

func (c *cache) remove(elem *list.Element) {
	c.lru.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).key)
}
