package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/colidx/internal/id"
	"github.com/steveyegge/colidx/internal/index/agg"
	"github.com/steveyegge/colidx/internal/index/leaf"
	"github.com/steveyegge/colidx/internal/store"
)

type person struct {
	name string
	age  int
}

func TestPremapRange(t *testing.T) {
	s := store.New[person]()
	tmpl := NewPremap[person](func(p person) int { return p.age }, leaf.BTree[int, person]())
	ix := tmpl(s)

	ages := []int{30, 25, 40, 25}
	for _, a := range ages {
		p := person{age: a}
		i := s.Insert(p)
		ix.Observe(id.AddEvent(i, p))
	}

	got := ix.Inner().Range(leaf.Included(25), leaf.Included(30))
	assert.Len(t, got, 3)
}

func TestFilteredMeanScenario(t *testing.T) {
	s := store.New[int]()
	even := func(v int) bool { return v%2 == 0 }
	tmpl := NewFiltered[int](even, NewPremap[int](func(v int) float64 { return float64(v) }, agg.NewMean[float64, int]()))
	ix := tmpl(s)

	ids := make([]id.Id, 6)
	for n := 1; n <= 6; n++ {
		ids[n-1] = s.Insert(n)
		ix.Observe(id.AddEvent(ids[n-1], n))
	}

	mean, ok := ix.Inner().Inner().Value()
	require.True(t, ok)
	assert.InDelta(t, 4.0, mean, 1e-9)

	ix.Observe(id.RemoveEvent(ids[5], 6))
	mean, ok = ix.Inner().Inner().Value()
	require.True(t, ok)
	assert.InDelta(t, 3.0, mean, 1e-9)

	ix.Observe(id.RemoveEvent(ids[1], 2))
	ix.Observe(id.RemoveEvent(ids[3], 4))
	_, ok = ix.Inner().Inner().Value()
	assert.False(t, ok)
}

func TestFilteredTransitionsAcrossBoundary(t *testing.T) {
	s := store.New[int]()
	even := func(v int) bool { return v%2 == 0 }
	tmpl := NewFiltered[int](even, agg.NewCount[int, int]())
	ix := tmpl(s)

	i := s.Insert(1)
	ix.Observe(id.AddEvent(i, 1)) // odd: out of scope
	assert.Equal(t, 0, ix.Inner().Value())

	ix.Observe(id.UpdateEvent(i, 1, 2)) // odd -> even: forwarded as Add
	assert.Equal(t, 1, ix.Inner().Value())

	ix.Observe(id.UpdateEvent(i, 2, 3)) // even -> odd: forwarded as Remove
	assert.Equal(t, 0, ix.Inner().Value())
}

func TestGroupedCountScenario(t *testing.T) {
	type scored struct {
		team  string
		score int
	}
	s := store.New[scored]()
	tmpl := NewGrouped[scored](func(v scored) string { return v.team }, agg.NewCount[scored, scored]())
	ix := tmpl(s)

	entries := []scored{{"A", 1}, {"B", 2}, {"A", 3}, {"B", 4}, {"A", 5}}
	ids := make([]id.Id, len(entries))
	for i, e := range entries {
		ids[i] = s.Insert(e)
		ix.Observe(id.AddEvent(ids[i], e))
	}

	a, ok := ix.Group("A")
	require.True(t, ok)
	assert.Equal(t, 3, a.Value())

	b, ok := ix.Group("B")
	require.True(t, ok)
	assert.Equal(t, 2, b.Value())

	_, ok = ix.Group("C")
	assert.False(t, ok)
}

func TestGroupedUpdateAcrossGroups(t *testing.T) {
	type scored struct {
		team  string
		score int
	}
	s := store.New[scored]()
	tmpl := NewGrouped[scored](func(v scored) string { return v.team }, agg.NewCount[scored, scored]())
	ix := tmpl(s)

	entries := []scored{{"A", 1}, {"B", 2}, {"A", 3}, {"B", 4}, {"A", 5}}
	ids := make([]id.Id, len(entries))
	for i, e := range entries {
		ids[i] = s.Insert(e)
		ix.Observe(id.AddEvent(ids[i], e))
	}

	old := entries[0]
	newVal := scored{team: "B", score: 1}
	ix.Observe(id.UpdateEvent(ids[0], old, newVal))

	a, _ := ix.Group("A")
	assert.Equal(t, 2, a.Value())
	b, _ := ix.Group("B")
	assert.Equal(t, 3, b.Value())
}

func TestGroupedPrunesEmptyGroups(t *testing.T) {
	s := store.New[string]()
	tmpl := NewGrouped[string](func(v string) string { return v }, agg.NewCount[string, string]())
	ix := tmpl(s)

	i := s.Insert("x")
	ix.Observe(id.AddEvent(i, "x"))
	ix.Observe(id.RemoveEvent(i, "x"))

	_, ok := ix.Group("x")
	assert.False(t, ok, "pruned group must not be observable through Group")
	assert.NotContains(t, ix.Keys(), "x")
}

func TestZip2FansOutToBothChildren(t *testing.T) {
	s := store.New[int]()
	tmpl := NewZip2[int, int](agg.NewCount[int, int](), agg.NewSum[int, int]())
	ix := tmpl(s)

	ix.Observe(id.AddEvent(id.Id(1), 10))
	ix.Observe(id.AddEvent(id.Id(2), 20))

	assert.Equal(t, 2, ix.First.Value())
	assert.Equal(t, 30, ix.Second.Value())
}
