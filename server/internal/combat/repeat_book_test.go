package combat

import "testing"

func TestRepeatBookSuppressesWithinTimeout(t *testing.T) {
	book := NewRepeatBook()
	if !book.Ready("goblin-1", "sword") {
		t.Fatalf("unused book should be ready")
	}
	book.Insert("goblin-1", "sword", 1.0)
	if book.Ready("goblin-1", "sword") {
		t.Fatalf("freshly inserted group should not be ready")
	}
	book.Tick(0.5)
	if book.Ready("goblin-1", "sword") {
		t.Fatalf("group should still be suppressed halfway through timeout")
	}
}

func TestRepeatBookReadyAfterTimeoutElapses(t *testing.T) {
	book := NewRepeatBook()
	book.Insert("goblin-1", "sword", 1.0)
	book.Tick(0.6)
	book.Tick(0.6)
	if !book.Ready("goblin-1", "sword") {
		t.Fatalf("group should be ready once its timeout has fully elapsed")
	}
}

func TestRepeatBookGroupsAreIndependent(t *testing.T) {
	book := NewRepeatBook()
	book.Insert("goblin-1", "sword", 1.0)
	if !book.Ready("goblin-1", "fire") {
		t.Fatalf("a different repeat group against the same target should be unaffected")
	}
}

func TestRepeatBookTargetsAreIndependent(t *testing.T) {
	book := NewRepeatBook()
	book.Insert("goblin-1", "sword", 1.0)
	if !book.Ready("goblin-2", "sword") {
		t.Fatalf("the same group against a different target should be unaffected")
	}
}

func TestRepeatBookZeroTimeoutNeverSuppresses(t *testing.T) {
	book := NewRepeatBook()
	book.Insert("goblin-1", "sword", 0)
	if !book.Ready("goblin-1", "sword") {
		t.Fatalf("a zero timeout should not suppress repeat hits")
	}
}
