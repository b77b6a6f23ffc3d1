package store

import "testing"

func TestInsertGet(t *testing.T) {
	s := New[string]()
	i := s.Insert("a")
	v, ok := s.Get(i)
	if !ok || v != "a" {
		t.Fatalf("Get(%v) = (%q, %v), want (\"a\", true)", i, v, ok)
	}
}

func TestInsertIdsMonotonic(t *testing.T) {
	s := New[int]()
	var prev = -1
	for n := 0; n < 10; n++ {
		i := s.Insert(n)
		if int(i) <= prev {
			t.Fatalf("id %v did not increase past %d", i, prev)
		}
		prev = int(i)
	}
}

func TestReplaceReturnsOldValue(t *testing.T) {
	s := New[string]()
	i := s.Insert("a")
	old := s.Replace(i, "b")
	if old != "a" {
		t.Fatalf("Replace returned %q, want \"a\"", old)
	}
	v, _ := s.Get(i)
	if v != "b" {
		t.Fatalf("Get after Replace = %q, want \"b\"", v)
	}
}

func TestRemoveDeletesAndNeverReissues(t *testing.T) {
	s := New[string]()
	i := s.Insert("a")
	old := s.Remove(i)
	if old != "a" {
		t.Fatalf("Remove returned %q, want \"a\"", old)
	}
	if _, ok := s.Get(i); ok {
		t.Fatal("expected id to be gone after Remove")
	}
	j := s.Insert("b")
	if j == i {
		t.Fatalf("reissued id %v after removal", i)
	}
}

func TestReplaceUnknownIdPanics(t *testing.T) {
	s := New[string]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic replacing an unknown id")
		}
	}()
	s.Replace(42, "x")
}

func TestRemoveUnknownIdPanics(t *testing.T) {
	s := New[string]()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing an unknown id")
		}
	}()
	s.Remove(42)
}

func TestIterCoversAllItems(t *testing.T) {
	s := New[int]()
	want := map[int]int{}
	for n := 0; n < 5; n++ {
		i := s.Insert(n * 10)
		want[int(i)] = n * 10
	}

	got := map[int]int{}
	for i, v := range s.Iter() {
		got[int(i)] = v
	}

	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("item %d = %d, want %d", k, got[k], v)
		}
	}
}

func TestLen(t *testing.T) {
	s := New[int]()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	s.Insert(1)
	i := s.Insert(2)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	s.Remove(i)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}
