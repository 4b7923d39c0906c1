package core

import "testing"

func TestJsonQueryTraversesObjectsAndArrays(t *testing.T) {
	inner := NewOrderedMap()
	inner.Set("walkSpeed", NewFloat(3.5))

	drops := NewArray([]Json{
		NewString("ore"),
		NewString("gem"),
	})

	root := NewOrderedMap()
	root.Set("movementSettings", NewObject(inner))
	root.Set("drops", drops)

	value := NewObject(root).Query("movementSettings.walkSpeed", NewFloat(-1))
	f, ok := value.Float()
	if !ok || f != 3.5 {
		t.Fatalf("expected 3.5, got %v ok=%v", f, ok)
	}

	second := NewObject(root).Query("drops[1]", NewNull())
	s, ok := second.String()
	if !ok || s != "gem" {
		t.Fatalf("expected gem, got %v ok=%v", s, ok)
	}

	missing := NewObject(root).Query("movementSettings.runSpeed", NewFloat(42))
	f2, _ := missing.Float()
	if f2 != 42 {
		t.Fatalf("expected default 42, got %v", f2)
	}
}

func TestBiMapRoundTrip(t *testing.T) {
	type kind int
	const (
		kindA kind = iota
		kindB
	)
	bm := NewBiMap(
		struct {
			Key  kind
			Name string
		}{kindA, "a"},
		struct {
			Key  kind
			Name string
		}{kindB, "b"},
	)

	name, ok := bm.Name(kindB)
	if !ok || name != "b" {
		t.Fatalf("expected name b, got %q ok=%v", name, ok)
	}
	key, ok := bm.Key("a")
	if !ok || key != kindA {
		t.Fatalf("expected kindA, got %v ok=%v", key, ok)
	}
	if _, ok := bm.Key("missing"); ok {
		t.Fatalf("expected missing name to be absent")
	}
}

func TestEitherAndOption(t *testing.T) {
	e := Left[string, int]("err")
	if !e.IsLeft() {
		t.Fatalf("expected left")
	}
	if v, ok := e.LeftValue(); !ok || v != "err" {
		t.Fatalf("expected left value err, got %v ok=%v", v, ok)
	}

	opt := Some(7)
	if v, ok := opt.Get(); !ok || v != 7 {
		t.Fatalf("expected 7, got %v ok=%v", v, ok)
	}
	if None[int]().IsSome() {
		t.Fatalf("expected None to be absent")
	}
}
