package script

import (
	"sandboxcore/server/internal/movement"
	"sandboxcore/server/internal/world"
)

// McontrollerCapability is the narrow slice of internal/movement.Controller
// a script is permitted to drive directly, mirroring the "mcontroller"
// namespace StarMovementControllerLuaBindings.hpp registers.
type McontrollerCapability interface {
	Position() world.Vec2
	Velocity() world.Vec2
	Rotation() float64
	Facing() string
	SetPosition(world.Vec2) error
	SetVelocity(world.Vec2) error
	SetRotation(radians float64) error
	SetControls(movement.Controls)
}

// McontrollerBinding wraps an McontrollerCapability for a single script call.
type McontrollerBinding struct {
	Controller McontrollerCapability
}

func (m McontrollerBinding) Position() world.Vec2 {
	if m.Controller == nil {
		return world.Vec2{}
	}
	return m.Controller.Position()
}

func (m McontrollerBinding) SetPosition(pos world.Vec2) error {
	if m.Controller == nil {
		return nil
	}
	return m.Controller.SetPosition(pos)
}

func (m McontrollerBinding) Velocity() world.Vec2 {
	if m.Controller == nil {
		return world.Vec2{}
	}
	return m.Controller.Velocity()
}

func (m McontrollerBinding) SetVelocity(v world.Vec2) error {
	if m.Controller == nil {
		return nil
	}
	return m.Controller.SetVelocity(v)
}

func (m McontrollerBinding) Facing() string {
	if m.Controller == nil {
		return ""
	}
	return m.Controller.Facing()
}

func (m McontrollerBinding) Controls(controls movement.Controls) {
	if m.Controller == nil {
		return
	}
	m.Controller.SetControls(controls)
}
