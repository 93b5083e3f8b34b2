package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/customer-page-service/internal/domain"
)

func order(id, customerID int64) domain.Order {
	return domain.Order{ID: &id, CustomerID: customerID, Reference: fmt.Sprintf("DE--%d", id)}
}

func TestMemoryOrderCacheSetAndGet(t *testing.T) {
	c := NewMemoryOrderCache()
	c.Set(order(1, 10))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "DE--1", got.Reference)

	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestMemoryOrderCacheIgnoresOrdersWithoutID(t *testing.T) {
	c := NewMemoryOrderCache()
	c.Set(domain.Order{CustomerID: 10})

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.ListByCustomer(10))
}

func TestMemoryOrderCacheListByCustomer(t *testing.T) {
	c := NewMemoryOrderCache()
	c.Set(order(1, 10))
	c.Set(order(2, 10))
	c.Set(order(3, 20))

	assert.Len(t, c.ListByCustomer(10), 2)
	assert.Len(t, c.ListByCustomer(20), 1)
	assert.Empty(t, c.ListByCustomer(30))
}

func TestMemoryOrderCacheReindexesOnCustomerChange(t *testing.T) {
	c := NewMemoryOrderCache()
	c.Set(order(1, 10))
	c.Set(order(1, 20))

	assert.Empty(t, c.ListByCustomer(10))
	require.Len(t, c.ListByCustomer(20), 1)
	assert.Equal(t, int64(20), c.ListByCustomer(20)[0].CustomerID)
}

func TestMemoryOrderCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryOrderCache()
	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			c.Set(order(id, id%5))
		}(i)
		go func(id int64) {
			defer wg.Done()
			_ = c.ListByCustomer(id % 5)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
