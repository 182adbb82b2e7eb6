package cacher_test

import (
	"testing"

	"github.com/on-the-ground/cacher_go/cacher"
	"github.com/stretchr/testify/assert"
)

func TestKeyedCacher_OncePerKey(t *testing.T) {
	count := 0
	c := cacher.NewKeyed(func(n uint32) uint32 {
		count++
		return n * 3
	})

	assert.Equal(t, uint32(3), c.Value(1))
	assert.Equal(t, uint32(3), c.Value(1)) // no recompute
	assert.Equal(t, uint32(6), c.Value(2))
	assert.Equal(t, uint32(6), c.Value(2))
	assert.Equal(t, uint32(3), c.Value(1))

	assert.Equal(t, 2, count)
	assert.Equal(t, 2, c.Len())

	stats := c.Stats()
	assert.Equal(t, 3, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
}

func TestKeyedCacher_ValueSurvivesOtherLookups(t *testing.T) {
	count := 0
	c := cacher.NewKeyed(func(n uint32) uint32 {
		count++
		return n + 100
	})

	assert.Equal(t, uint32(101), c.Value(1))
	for i := uint32(2); i < 10; i++ {
		c.Value(i)
	}
	assert.Equal(t, uint32(101), c.Value(1))
	assert.Equal(t, 9, count)
}

func TestKeyedCacher_ZeroKeyIsAKey(t *testing.T) {
	count := 0
	c := cacher.NewKeyed(func(n uint32) uint32 {
		count++
		return 42
	})

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint32(42), c.Value(0))
	assert.Equal(t, uint32(42), c.Value(0))
	assert.Equal(t, 1, count)
}
