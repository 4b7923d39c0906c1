package movement

import (
	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/world"
)

// PathMoveResult describes the outcome of a path computation triggered by
// PathMove on this tick.
type PathMoveResult struct {
	Goal world.Vec2
}

// PathMove requests navigation toward target. It (re)plans immediately when
// the target differs from the one currently being followed or the prior
// attempt's recalculation cooldown has elapsed, returning Some(result) only
// when a plan was actually computed on this call. The plan, once computed,
// is executed incrementally by TickMaster on every subsequent tick that
// receives the same request; memoising repeated calls for an unchanged
// target across ticks is the caller's responsibility.
func (c *Controller) PathMove(target world.Vec2, run bool, params PathMoveParams) core.Option[PathMoveResult] {
	if c.world == nil {
		return core.None[PathMoveResult]()
	}
	if params.ArriveRadius > 0 {
		c.path.ArriveRadius = params.ArriveRadius
	}
	c.controls.PathMove = core.Some(PathMoveRequest{Target: target, Run: run, Params: params})

	width, height := c.world.Dimensions()
	clamped := world.Vec2{
		X: world.Clamp(target.X, c.cfg.Radius, width-c.cfg.Radius),
		Y: world.Clamp(target.Y, c.cfg.Radius, height-c.cfg.Radius),
	}
	alreadyFollowing := c.path.PathTarget == clamped && (len(c.path.Path) > 0 || c.path.PathRecalcTick > c.tick)
	if alreadyFollowing {
		return core.None[PathMoveResult]()
	}

	if !world.EnsurePlayerPath(c.pathActor(), target, c.tick, c) {
		return core.None[PathMoveResult]()
	}
	return core.Some(PathMoveResult{Goal: c.path.PathGoal})
}

func (c *Controller) pathActor() *world.PlayerPathActor {
	return &world.PlayerPathActor{
		ID:     c.id,
		X:      c.posX.Get(),
		Y:      c.posY.Get(),
		Facing: c.face.Get(),
		Path:   &c.path,
	}
}

// SetIntent implements world.PlayerPathController, feeding a path-follow
// step's steering vector into this tick's movement integration.
func (c *Controller) SetIntent(actorID string, dx, dy float64) {
	c.controls.Move = world.Vec2{X: dx, Y: dy}
}

// SetFacing implements world.PlayerPathController.
func (c *Controller) SetFacing(actorID string, facing string) {
	c.face.Set(facing)
}

// DeriveFacing implements world.PlayerPathController.
func (c *Controller) DeriveFacing(dx, dy float64, fallback string) string {
	return deriveFacing(dx, dy, fallback)
}

// Dimensions implements world.PlayerPathController.
func (c *Controller) Dimensions() (float64, float64) {
	return c.world.Dimensions()
}

// ComputePlayerPath implements world.PlayerPathController, routing the A*
// search through the configured world's current obstacles and other actors.
func (c *Controller) ComputePlayerPath(actorID string, target world.Vec2) ([]world.Vec2, world.Vec2, bool) {
	width, height := c.world.Dimensions()
	return world.ComputeNavigationPath(world.ComputePathRequest{
		Start:     c.Position(),
		Target:    target,
		Width:     width,
		Height:    height,
		Obstacles: c.world.Obstacles(),
	}, c.world.OtherActors(c.id), c.id)
}
