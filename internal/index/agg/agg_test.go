package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/store"
)

func TestCount(t *testing.T) {
	ix := NewCount[int, int]()(store.New[int]())
	assert.Equal(t, 0, ix.Value())

	ix.Observe(id.AddEvent(id.Id(1), 1))
	ix.Observe(id.AddEvent(id.Id(2), 2))
	assert.Equal(t, 2, ix.Value())

	ix.Observe(id.RemoveEvent(id.Id(1), 1))
	assert.Equal(t, 1, ix.Value())
}

func TestSum(t *testing.T) {
	ix := NewSum[int, int]()(store.New[int]())
	ix.Observe(id.AddEvent(id.Id(1), 10))
	ix.Observe(id.AddEvent(id.Id(2), 20))
	assert.Equal(t, 30, ix.Value())

	ix.Observe(id.UpdateEvent(id.Id(1), 10, 15))
	assert.Equal(t, 35, ix.Value())

	ix.Observe(id.RemoveEvent(id.Id(2), 20))
	assert.Equal(t, 15, ix.Value())
}

func TestMeanUndefinedWhenEmpty(t *testing.T) {
	ix := NewMean[float64, float64]()(store.New[float64]())
	_, ok := ix.Value()
	assert.False(t, ok)
}

func TestMeanMatchesFilteredScenario(t *testing.T) {
	ix := NewMean[float64, float64]()(store.New[float64]())
	values := []float64{1, 2, 3, 4, 5, 6}
	ids := make([]id.Id, len(values))
	for i, v := range values {
		if int(v)%2 != 0 {
			continue
		}
		ids[i] = id.Id(i)
		ix.Observe(id.AddEvent(ids[i], v))
	}

	mean, ok := ix.Value()
	require.True(t, ok)
	assert.InDelta(t, 4.0, mean, 1e-9)

	ix.Observe(id.RemoveEvent(id.Id(5), 6))
	mean, ok = ix.Value()
	require.True(t, ok)
	assert.InDelta(t, 3.0, mean, 1e-9)

	ix.Observe(id.RemoveEvent(id.Id(1), 2))
	ix.Observe(id.RemoveEvent(id.Id(3), 4))
	_, ok = ix.Value()
	assert.False(t, ok)
}

func TestMinMaxEmpty(t *testing.T) {
	ix := NewMin[int, int]()(store.New[int]())
	_, ok := ix.Min()
	assert.False(t, ok)
	_, ok = ix.Max()
	assert.False(t, ok)
}

func TestMinMaxTracksExtremaAcrossRemovals(t *testing.T) {
	ix := NewMin[int, int]()(store.New[int]())
	values := []int{5, 2, 9, 2, 7}
	ids := make([]id.Id, len(values))
	for i, v := range values {
		ids[i] = id.Id(i)
		ix.Observe(id.AddEvent(ids[i], v))
	}

	min, ok := ix.Min()
	require.True(t, ok)
	assert.Equal(t, 2, min)

	max, ok := ix.Max()
	require.True(t, ok)
	assert.Equal(t, 9, max)

	ix.Observe(id.RemoveEvent(ids[2], 9))
	max, ok = ix.Max()
	require.True(t, ok)
	assert.Equal(t, 7, max)

	ix.Observe(id.RemoveEvent(ids[1], 2))
	min, ok = ix.Min()
	require.True(t, ok)
	assert.Equal(t, 2, min) // the other "2" (index 3) remains
}

func TestFoldInvertibleStringConcat(t *testing.T) {
	add := func(s string, v int) string {
		return s + "+"
	}
	remove := func(s string, v int) string {
		if len(s) == 0 {
			return s
		}
		return s[:len(s)-1]
	}
	ix := NewFold[int, string, int]("", add, remove)(store.New[int]())

	ix.Observe(id.AddEvent(id.Id(1), 1))
	ix.Observe(id.AddEvent(id.Id(2), 2))
	assert.Equal(t, "++", ix.Value())

	ix.Observe(id.RemoveEvent(id.Id(1), 1))
	assert.Equal(t, "+", ix.Value())
}
