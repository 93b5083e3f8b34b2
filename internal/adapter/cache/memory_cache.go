package cache

import (
	"sync"

	"github.com/example/customer-page-service/internal/domain"
)

type MemoryOrderCache struct {
	mu         sync.RWMutex
	store      map[int64]domain.Order
	byCustomer map[int64]map[int64]struct{}
}

func NewMemoryOrderCache() *MemoryOrderCache {
	return &MemoryOrderCache{
		store:      make(map[int64]domain.Order),
		byCustomer: make(map[int64]map[int64]struct{}),
	}
}

func (c *MemoryOrderCache) Get(id int64) (domain.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.store[id]
	return o, ok
}

// Set ignores orders without an ID.
func (c *MemoryOrderCache) Set(o domain.Order) {
	if !o.Found() {
		return
	}
	id := o.IDValue()

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.store[id]; ok && prev.CustomerID != o.CustomerID {
		delete(c.byCustomer[prev.CustomerID], id)
	}
	c.store[id] = o
	ids, ok := c.byCustomer[o.CustomerID]
	if !ok {
		ids = make(map[int64]struct{})
		c.byCustomer[o.CustomerID] = ids
	}
	ids[id] = struct{}{}
}

// ListByCustomer returns the customer's orders in no particular order.
func (c *MemoryOrderCache) ListByCustomer(customerID int64) []domain.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := c.byCustomer[customerID]
	out := make([]domain.Order, 0, len(ids))
	for id := range ids {
		out = append(out, c.store[id])
	}
	return out
}

func (c *MemoryOrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

var _ domain.OrderCache = (*MemoryOrderCache)(nil)
