package cache

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := New(2)
	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.Assert(t, ok)
	assert.Equal(t, v.(int), 1)
}

func TestMissReturnsFalse(t *testing.T) {
	c := New(2)
	_, ok := c.Get("missing")
	assert.Assert(t, !ok)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // touch a, making b the LRU entry
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.Assert(t, !ok)

	_, ok = c.Get("a")
	assert.Assert(t, ok)
	_, ok = c.Get("c")
	assert.Assert(t, ok)
}

func TestSetExistingKeyUpdatesValue(t *testing.T) {
	c := New(2)
	c.Set("a", 1)
	c.Set("a", 2)
	v, ok := c.Get("a")
	assert.Assert(t, ok)
	assert.Equal(t, v.(int), 2)
}
