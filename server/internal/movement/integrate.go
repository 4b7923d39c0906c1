package movement

import (
	"math"
	"time"

	"sandboxcore/server/internal/world"
)

// TickMaster integrates controls against world geometry: velocity set
// directly from the normalized move intent at walk or run speed (there are
// no acceleration, force or approach-velocity controls), anchor overriding
// local controls when occupied, and axis-separated collision resolution against obstacles via
// world.MoveActorWithObstacles (resolve X, then Y against the new X, then
// push the entity out of anything it still overlaps).
func (c *Controller) TickMaster(dt time.Duration) error {
	if err := c.requireWorld(); err != nil {
		return err
	}
	c.tick++

	if c.anchored() {
		c.tickAnchorSlave()
		if c.autoClearControls {
			c.controls = Controls{}
		}
		return nil
	}

	if req, ok := c.controls.PathMove.Get(); ok {
		actor := c.pathActor()
		world.FollowPlayerPath(actor, c.tick, c)
		c.controls.Run = req.Run
	} else {
		world.ClearPlayerPath(c.pathActor())
	}

	dx, dy := c.controls.Move.X, c.controls.Move.Y
	length := math.Hypot(dx, dy)
	if length != 0 {
		dx /= length
		dy /= length
	}

	speed := c.cfg.WalkSpeed
	if c.controls.Run {
		speed = c.cfg.RunSpeed
	}
	if speed == 0 {
		speed = c.cfg.WalkSpeed
	}

	pos := c.Position()
	width, height := c.world.Dimensions()
	obstacles := c.world.Obstacles()

	actor := &world.MovementActor{X: pos.X, Y: pos.Y, IntentX: dx, IntentY: dy}
	world.MoveActorWithObstacles(actor, dt.Seconds(), obstacles, width, height, speed, c.cfg.Radius)

	if err := c.SetPosition(world.Vec2{X: actor.X, Y: actor.Y}); err != nil {
		return err
	}
	if err := c.SetVelocity(world.Vec2{X: dx * speed, Y: dy * speed}); err != nil {
		return err
	}

	if face, ok := c.controls.Face.Get(); ok {
		if err := c.SetRotation(face); err != nil {
			return err
		}
	} else if dx != 0 || dy != 0 {
		c.face.Set(deriveFacing(dx, dy, c.face.Get()))
	}

	if c.autoClearControls {
		c.controls = Controls{}
	}
	return nil
}

// deriveFacing picks a cardinal direction from a movement vector, falling
// back to the current facing when idle.
func deriveFacing(dx, dy float64, fallback string) string {
	if fallback == "" {
		fallback = "down"
	}
	const epsilon = 1e-6
	if math.Abs(dx) < epsilon {
		dx = 0
	}
	if math.Abs(dy) < epsilon {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return fallback
	}
	absX, absY := math.Abs(dx), math.Abs(dy)
	if absY >= absX && dy != 0 {
		if dy > 0 {
			return "down"
		}
		return "up"
	}
	if dx > 0 {
		return "right"
	}
	return "left"
}
