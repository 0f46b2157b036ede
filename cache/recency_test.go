package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(r *recencyList) []string {
	var keys []string
	for {
		key, ok := r.lru()
		if !ok {
			return keys
		}
		r.remove(key)
		keys = append(keys, key)
	}
}

func TestRecencyList_InsertionOrder(t *testing.T) {
	r := newRecencyList()
	r.touch("a")
	r.touch("b")
	r.touch("c")

	assert.Equal(t, 3, r.len())
	// Without reads, eviction order is insertion order.
	assert.Equal(t, []string{"a", "b", "c"}, drain(r))
	assert.Equal(t, 0, r.len())
}

func TestRecencyList_TouchMovesToMRU(t *testing.T) {
	r := newRecencyList()
	r.touch("a")
	r.touch("b")
	r.touch("c")
	r.touch("a") // a becomes most recently used

	assert.Equal(t, 3, r.len())
	assert.Equal(t, []string{"b", "c", "a"}, drain(r))
}

func TestRecencyList_Remove(t *testing.T) {
	r := newRecencyList()
	r.touch("a")
	r.touch("b")

	r.remove("a")
	r.remove("missing") // ignored

	key, ok := r.lru()
	assert.True(t, ok)
	assert.Equal(t, "b", key)
}

func TestRecencyList_Empty(t *testing.T) {
	r := newRecencyList()

	_, ok := r.lru()
	assert.False(t, ok)

	r.touch("a")
	r.clear()
	assert.Equal(t, 0, r.len())
	_, ok = r.lru()
	assert.False(t, ok)
}
