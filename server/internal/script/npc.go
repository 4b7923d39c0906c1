package script

import "sandboxcore/server/internal/world"

// NpcBinding exposes the navigation and waypoint surface an NPC script
// drives directly (outside of the scripted-behavior tree), grounded on
// the teacher's internal/ai.NPCHooks/NPC fields (Waypoints, Home,
// ClearPath, EnsurePath) adapted into bound closures.
type NpcBinding struct {
	Waypoints  func() []world.Vec2
	SetHome    func(world.Vec2)
	Home       func() world.Vec2
	ClearPath  func()
	EnsurePath func(target world.Vec2, tick uint64) bool
}

// NavigateTo clears any existing path and ensures a fresh one toward
// target, returning whether a path was found.
func (n NpcBinding) NavigateTo(target world.Vec2, tick uint64) bool {
	if n.ClearPath != nil {
		n.ClearPath()
	}
	if n.EnsurePath == nil {
		return false
	}
	return n.EnsurePath(target, tick)
}
