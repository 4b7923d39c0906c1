package script

import (
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/status"
)

// StatusCapability is the narrow slice of internal/status.Controller a
// script is permitted to drive directly, mirroring
// StarStatusControllerLuaBindings' resource/stat/property/effect surface.
type StatusCapability interface {
	Stat(name string) float64
	Resource(name string) (status.ResourceSnapshot, bool)
	ConsumeResource(name string, amount float64) (bool, error)
	OverConsumeResource(name string, amount float64) (bool, error)
	GiveResource(name string, amount float64) error
	SetResourceLocked(name string, locked bool) error
	Property(key string) (core.Json, bool)
	SetProperty(key string, value core.Json)
	AddEphemeralEffect(name string, duration time.Duration) error
	AddPersistentEffect(name, category string) error
	RemoveEffect(name string)
	ActiveUniqueStatusEffectSummary() []string
}

// StatusBinding wraps a StatusCapability for a single script call.
type StatusBinding struct {
	Controller StatusCapability
}

func (s StatusBinding) Stat(name string) float64 {
	if s.Controller == nil {
		return 0
	}
	return s.Controller.Stat(name)
}

func (s StatusBinding) Resource(name string) (status.ResourceSnapshot, bool) {
	if s.Controller == nil {
		return status.ResourceSnapshot{}, false
	}
	return s.Controller.Resource(name)
}

func (s StatusBinding) ConsumeResource(name string, amount float64) (bool, error) {
	if s.Controller == nil {
		return false, nil
	}
	return s.Controller.ConsumeResource(name, amount)
}

func (s StatusBinding) GiveResource(name string, amount float64) error {
	if s.Controller == nil {
		return nil
	}
	return s.Controller.GiveResource(name, amount)
}

func (s StatusBinding) Property(key string) (core.Json, bool) {
	if s.Controller == nil {
		return core.NewNull(), false
	}
	return s.Controller.Property(key)
}

func (s StatusBinding) SetProperty(key string, value core.Json) {
	if s.Controller == nil {
		return
	}
	s.Controller.SetProperty(key, value)
}

func (s StatusBinding) AddEphemeralEffect(name string, duration time.Duration) error {
	if s.Controller == nil {
		return nil
	}
	return s.Controller.AddEphemeralEffect(name, duration)
}

func (s StatusBinding) RemoveEffect(name string) {
	if s.Controller == nil {
		return
	}
	s.Controller.RemoveEffect(name)
}

func (s StatusBinding) ActiveUniqueStatusEffectSummary() []string {
	if s.Controller == nil {
		return nil
	}
	return s.Controller.ActiveUniqueStatusEffectSummary()
}
