package render

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFIFO(t *testing.T) {
	c := NewCache(3)
	c.Put("a", Text("a"))
	c.Put("b", Text("b"))
	c.Put("c", Text("c"))

	// a hit does not protect "a" from eviction
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("d", Text("d"))

	assert.False(t, c.Contains("a"))
	assert.Equal(t, []string{"b", "c", "d"}, c.order)
	assert.Equal(t, 3, c.Len())
}

func TestCachePutExistingKeepsPosition(t *testing.T) {
	c := NewCache(2)
	c.Put("a", Text("1"))
	c.Put("b", Text("b"))
	c.Put("a", Text("2"))

	out, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", out.TextContent())
	assert.Equal(t, []string{"a", "b"}, c.order)

	c.Put("c", Text("c"))
	assert.False(t, c.Contains("a"))
}

func TestCacheStoresNothing(t *testing.T) {
	c := NewCache(2)
	c.Put("empty", nil)

	out, ok := c.Get("empty")
	assert.True(t, ok)
	assert.Nil(t, out)
}

func TestNewCacheInvalidCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewCache(0).Stats().MaxSize)
	assert.Equal(t, DefaultCapacity, NewCache(-5).Stats().MaxSize)
	assert.Equal(t, 1, NewCache(1).Stats().MaxSize)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(50)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(w*1000 + i)
				c.Put(key, Text(key))
				c.Get(key)
			}
		}(w)
	}
	wg.Wait()

	stats := c.Stats()
	assert.Equal(t, 50, stats.Size)
	assert.Len(t, c.order, 50)
	assert.Equal(t, uint64(1600), stats.Hits+stats.Misses)
}
