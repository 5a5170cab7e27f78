package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricMapStablePointer verifies repeated lookups share one metric
func TestMetricMapStablePointer(t *testing.T) {
	m := NewMetricMap[Gauge]()
	assert.False(t, m.Has("a"))

	g := m.Get("a")
	g.Set(1.5)
	assert.Same(t, g, m.Get("a"))
	assert.True(t, m.Has("a"))
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 1.5, m.Get("a").Get())
}

// TestConcurrentCounters verifies cached counters survive parallel writers
func TestConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := r.Ints.Get(KeyTicks)
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8000), r.Ints.Get(KeyTicks).Load())
}

// TestLabelTruncates verifies long labels are capped
func TestLabelTruncates(t *testing.T) {
	var l Label
	assert.Empty(t, l.Load())
	l.Store("abcdefghijklmnopqrstuvwxyz")
	assert.Equal(t, "abcdefghijklmnopqrst", l.Load())
}

// TestFieldsOrder verifies the snapshot groups by type and sorts keys
func TestFieldsOrder(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyScreen).Store("paused")
	r.Floats.Get(KeyFrameTime).Set(2.5)
	r.Ints.Get(KeyTicks).Store(7)
	r.Ints.Get(KeyFrames).Store(3)

	fields := r.Fields()
	require.Len(t, fields, 4)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{KeyTicks, KeyFrames, KeyFrameTime, KeyScreen}, keys)
	assert.Equal(t, int64(7), fields[0].Integer)
	assert.Equal(t, "paused", fields[3].String)
}
