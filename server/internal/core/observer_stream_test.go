package core

import "testing"

func TestObserverStreamQueryReturnsDisjointSuffix(t *testing.T) {
	s := NewObserverStream[string](0)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	first, cursor := s.Query(0)
	if len(first) != 3 {
		t.Fatalf("expected 3 values, got %d", len(first))
	}

	s.Add("d")
	second, _ := s.Query(cursor)
	if len(second) != 1 || second[0] != "d" {
		t.Fatalf("expected disjoint suffix [d], got %v", second)
	}
}

func TestObserverStreamPrunesOldEntries(t *testing.T) {
	s := NewObserverStream[int](2)
	for i := 0; i < 5; i++ {
		s.Add(i)
	}
	values, _ := s.Query(0)
	if len(values) > 3 {
		t.Fatalf("expected pruning to bound history, got %d entries", len(values))
	}
	for _, v := range values {
		if v < 2 {
			t.Fatalf("expected pruned entries to be gone, found %d", v)
		}
	}
}

func TestObserverStreamTickAdvancesWithoutValue(t *testing.T) {
	s := NewObserverStream[int](0)
	s.Add(1)
	s.Tick(10)
	s.Add(2)

	values, _ := s.Query(0)
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
}
