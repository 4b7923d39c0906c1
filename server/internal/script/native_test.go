package script

import (
	"testing"
	"time"

	"sandboxcore/server/internal/core"
)

func TestNativeScriptUpdateCallsOnUpdate(t *testing.T) {
	var gotDt time.Duration
	s := &NativeScript{
		OnUpdate: func(b Bindings, dt time.Duration) error {
			gotDt = dt
			return nil
		},
	}
	if err := s.Init(Bindings{}); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if err := s.Update(250 * time.Millisecond); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if gotDt != 250*time.Millisecond {
		t.Fatalf("expected dt passed through, got %v", gotDt)
	}
}

func TestNativeScriptUpdateErrorMarksErrored(t *testing.T) {
	s := &NativeScript{
		OnUpdate: func(b Bindings, dt time.Duration) error {
			return errBoom
		},
	}
	_ = s.Init(Bindings{})
	if err := s.Update(time.Second); err == nil {
		t.Fatalf("expected error from update")
	}
	if !s.ShouldDie() {
		t.Fatalf("expected errored script to report ShouldDie")
	}
	if err := s.Update(time.Second); err != nil {
		t.Fatalf("expected errored script to skip further updates silently, got %v", err)
	}
	s.Reset()
	if s.ShouldDie() {
		t.Fatalf("expected reset to clear errored state")
	}
}

func TestNativeScriptHandleMessageDispatchesByName(t *testing.T) {
	s := &NativeScript{
		OnMessage: map[string]MessageFunc{
			"ping": func(b Bindings, sender string, args core.Json) (core.Json, bool, error) {
				return core.NewString("pong:" + sender), true, nil
			},
		},
	}
	_ = s.Init(Bindings{})

	result, err := s.HandleMessage("other-entity", "ping", core.NewNull())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := result.Get()
	if !ok {
		t.Fatalf("expected handled message")
	}
	str, _ := v.String()
	if str != "pong:other-entity" {
		t.Fatalf("expected pong:other-entity, got %q", str)
	}

	none, err := s.HandleMessage("other-entity", "unknown", core.NewNull())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := none.Get(); ok {
		t.Fatalf("expected unknown message name to return None")
	}
}

func TestNativeScriptStorageRoundTrip(t *testing.T) {
	s := &NativeScript{}
	_ = s.Init(Bindings{})
	s.SetStorage(core.NewString("saved"))
	v, ok := s.GetStorage().String()
	if !ok || v != "saved" {
		t.Fatalf("expected storage round-trip, got %q ok=%v", v, ok)
	}
}

func TestNativeScriptDieFlag(t *testing.T) {
	s := &NativeScript{}
	_ = s.Init(Bindings{})
	if s.ShouldDie() {
		t.Fatalf("expected fresh script not to report ShouldDie")
	}
	s.Die()
	if !s.ShouldDie() {
		t.Fatalf("expected Die() to set ShouldDie")
	}
}

type errString string

func (e errString) Error() string { return string(e) }

const errBoom = errString("boom")
