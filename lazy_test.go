package yapfm

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawuva/yapfm/cache"
)

func TestSectionLoader_LoadsOnce(t *testing.T) {
	calls := 0
	l := NewSectionLoader("section:db", nil, func() (any, error) {
		calls++
		return map[string]any{"host": "localhost"}, nil
	})

	assert.False(t, l.IsLoaded())

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"host": "localhost"}, v)
	assert.True(t, l.IsLoaded())

	_, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSectionLoader_MemoizesNil(t *testing.T) {
	calls := 0
	l := NewSectionLoader("section:absent", nil, func() (any, error) {
		calls++
		return nil, nil
	})

	v, err := l.Get()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "nil result must be memoized, not reloaded")
}

func TestSectionLoader_ErrorIsNotMemoized(t *testing.T) {
	calls := 0
	l := NewSectionLoader("section:flaky", nil, func() (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	})

	_, err := l.Get()
	require.Error(t, err)
	assert.False(t, l.IsLoaded())

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestSectionLoader_Invalidate(t *testing.T) {
	calls := 0
	l := NewSectionLoader("section:cfg", nil, func() (any, error) {
		calls++
		return calls, nil
	})

	v, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	l.Invalidate()
	assert.False(t, l.IsLoaded())

	v, err = l.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSectionLoader_SharedCache(t *testing.T) {
	c, err := cache.New[any](cache.Config{})
	require.NoError(t, err)

	calls := 0
	load := func() (any, error) {
		calls++
		return "value", nil
	}

	first := NewSectionLoader("section:shared", c, load)
	_, err = first.Get()
	require.NoError(t, err)

	// A second loader for the same key finds the cached value.
	second := NewSectionLoader("section:shared", c, load)
	v, err := second.Get()
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)
}

func TestSectionLoader_ConcurrentGets(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	l := NewSectionLoader("section:busy", nil, func() (any, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		return "done", nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Get()
			assert.NoError(t, err)
			assert.Equal(t, "done", v)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, calls, 2)
}

func TestFileManager_LazySection(t *testing.T) {
	m := newTestManager(t, "app.json", `{"database":{"host":"localhost","port":5432}}`)

	l := m.LazySection("database")
	assert.Same(t, l, m.LazySection("database"), "loaders are shared per path")
	assert.False(t, l.IsLoaded())

	v, err := l.Get()
	require.NoError(t, err)
	section, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", section["host"])
	assert.True(t, l.IsLoaded())
}

func TestFileManager_LazySectionInvalidatedByWrite(t *testing.T) {
	m := newTestManager(t, "app.json", `{"database":{"host":"localhost"}}`)

	l := m.LazySection("database")
	_, err := l.Get()
	require.NoError(t, err)
	require.True(t, l.IsLoaded())

	require.NoError(t, m.SetKey("database.host", "10.0.0.1"))
	assert.False(t, l.IsLoaded())

	v, err := l.Get()
	require.NoError(t, err)
	section := v.(map[string]any)
	assert.Equal(t, "10.0.0.1", section["host"])
}

func TestFileManager_WithLazySections(t *testing.T) {
	m := newTestManager(t, "app.json", `{"database":{"host":"localhost"}}`, WithLazySections())

	section, ok, err := m.GetSection("database")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "localhost", section["host"])

	// GetSection and LazySection share the same loader per path.
	assert.True(t, m.LazySection("database").IsLoaded())

	require.NoError(t, m.SetKey("database.host", "10.0.0.1"))
	section, ok, err = m.GetSection("database")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", section["host"])
}

func TestFileManager_LazySectionAbsentPath(t *testing.T) {
	m := newTestManager(t, "app.json", `{"a":1}`)

	l := m.LazySection("missing")
	v, err := l.Get()
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.True(t, l.IsLoaded(), "absent sections memoize as nil")
}
