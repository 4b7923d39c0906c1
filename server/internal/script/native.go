package script

import (
	"time"

	"sandboxcore/server/internal/core"
)

// UpdateFunc is the per-tick entrypoint a native script registers.
type UpdateFunc func(bindings Bindings, dt time.Duration) error

// MessageFunc handles one receiveMessage(sender, name, args) dispatch.
type MessageFunc func(bindings Bindings, sender string, args core.Json) (core.Json, bool, error)

// NativeScript is a native Go implementation of Script: a struct of
// per-event closures rather than an embedded interpreter, so variant
// behavior is written in-repo in the same language as the rest of the
// simulation. Any future Lua or WebAssembly host plugs into the same
// Script interface without the rest of the entity code noticing.
type NativeScript struct {
	OnInit     func(bindings Bindings) error
	OnUpdate   UpdateFunc
	OnMessage  map[string]MessageFunc
	OnShutdown func(bindings Bindings)

	bindings Bindings
	storage  core.Json
	die      bool
	errored  bool
}

var _ Script = (*NativeScript)(nil)

func (s *NativeScript) Init(bindings Bindings) error {
	s.bindings = bindings
	if s.OnInit == nil {
		return nil
	}
	if err := s.OnInit(bindings); err != nil {
		s.errored = true
		return err
	}
	return nil
}

func (s *NativeScript) Update(dt time.Duration) error {
	if s.errored || s.OnUpdate == nil {
		return nil
	}
	if err := s.OnUpdate(s.bindings, dt); err != nil {
		s.errored = true
		return err
	}
	return nil
}

func (s *NativeScript) HandleMessage(sender, name string, args core.Json) (core.Option[core.Json], error) {
	handler, ok := s.OnMessage[name]
	if !ok {
		return core.None[core.Json](), nil
	}
	result, handled, err := handler(s.bindings, sender, args)
	if err != nil {
		s.errored = true
		return core.None[core.Json](), err
	}
	if !handled {
		return core.None[core.Json](), nil
	}
	return core.Some(result), nil
}

func (s *NativeScript) Shutdown() {
	if s.OnShutdown != nil {
		s.OnShutdown(s.bindings)
	}
}

func (s *NativeScript) GetStorage() core.Json { return s.storage }
func (s *NativeScript) SetStorage(v core.Json) { s.storage = v }

// Die marks the script for death on the next ShouldDie query, the native
// equivalent of a script setting its own "shouldDie" flag.
func (s *NativeScript) Die() { s.die = true }

func (s *NativeScript) ShouldDie() bool { return s.die || s.errored }

// Reset clears the errored flag, the native counterpart of the engine's
// explicit reset-on-message/reinitialisation recovery path.
func (s *NativeScript) Reset() { s.errored = false }

// Errored reports whether the script is currently in the error-stopped
// state (a hook returned an error and Reset has not been called since).
func (s *NativeScript) Errored() bool { return s.errored }
