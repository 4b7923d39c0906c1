package world

import "math"

// MovementActor captures the minimal mutable state required to move an actor
// while resolving obstacle collisions.
type MovementActor struct {
	X       float64
	Y       float64
	IntentX float64
	IntentY float64
}

// MoveActorWithObstacles advances an actor while clamping speed, bounds, and
// blocking obstacles. Callers pass the desired movement speed in units per
// second and the actor's collision radius, so the same routine serves
// entities of any size rather than only the player's fixed half-width.
func MoveActorWithObstacles(state *MovementActor, dt float64, obstacles []Obstacle, width, height, speed, radius float64) {
	if state == nil {
		return
	}

	dx := state.IntentX
	dy := state.IntentY
	length := math.Hypot(dx, dy)
	if length != 0 {
		dx /= length
		dy /= length
	}

	deltaX := dx * speed * dt
	deltaY := dy * speed * dt

	newX := Clamp(state.X+deltaX, radius, width-radius)
	if deltaX != 0 {
		newX = resolveAxisMoveX(state.X, state.Y, newX, deltaX, obstacles, width, radius)
	}

	newY := Clamp(state.Y+deltaY, radius, height-radius)
	if deltaY != 0 {
		newY = resolveAxisMoveY(newX, state.Y, newY, deltaY, obstacles, height, radius)
	}

	state.X = newX
	state.Y = newY

	ResolveObstaclePenetration(state, obstacles, width, height, radius)
}

// resolveAxisMoveX applies horizontal movement while stopping at obstacle edges.
func resolveAxisMoveX(oldX, oldY, proposedX, deltaX float64, obstacles []Obstacle, width, radius float64) float64 {
	newX := proposedX
	for _, obs := range obstacles {
		if obs.Type == ObstacleTypeLava {
			continue
		}
		minY := obs.Y - radius
		maxY := obs.Y + obs.Height + radius
		if oldY < minY || oldY > maxY {
			continue
		}

		if deltaX > 0 {
			boundary := obs.X - radius
			if oldX <= boundary && newX > boundary {
				newX = boundary
			}
		} else if deltaX < 0 {
			boundary := obs.X + obs.Width + radius
			if oldX >= boundary && newX < boundary {
				newX = boundary
			}
		}
	}
	return Clamp(newX, radius, width-radius)
}

// resolveAxisMoveY applies vertical movement while stopping at obstacle edges.
func resolveAxisMoveY(oldX, oldY, proposedY, deltaY float64, obstacles []Obstacle, height, radius float64) float64 {
	newY := proposedY
	for _, obs := range obstacles {
		if obs.Type == ObstacleTypeLava {
			continue
		}
		minX := obs.X - radius
		maxX := obs.X + obs.Width + radius
		if oldX < minX || oldX > maxX {
			continue
		}

		if deltaY > 0 {
			boundary := obs.Y - radius
			if oldY <= boundary && newY > boundary {
				newY = boundary
			}
		} else if deltaY < 0 {
			boundary := obs.Y + obs.Height + radius
			if oldY >= boundary && newY < boundary {
				newY = boundary
			}
		}
	}
	return Clamp(newY, radius, height-radius)
}

// ResolveObstaclePenetration nudges an actor out of overlapping obstacles.
func ResolveObstaclePenetration(state *MovementActor, obstacles []Obstacle, width, height, radius float64) {
	if state == nil {
		return
	}

	for _, obs := range obstacles {
		if obs.Type == ObstacleTypeLava {
			continue
		}
		if !CircleRectOverlap(state.X, state.Y, radius, obs) {
			continue
		}

		closestX := Clamp(state.X, obs.X, obs.X+obs.Width)
		closestY := Clamp(state.Y, obs.Y, obs.Y+obs.Height)
		dx := state.X - closestX
		dy := state.Y - closestY
		distSq := dx*dx + dy*dy

		if distSq == 0 {
			left := math.Abs(state.X - obs.X)
			right := math.Abs((obs.X + obs.Width) - state.X)
			top := math.Abs(state.Y - obs.Y)
			bottom := math.Abs((obs.Y + obs.Height) - state.Y)

			minDist := left
			direction := 0
			if right < minDist {
				minDist = right
				direction = 1
			}
			if top < minDist {
				minDist = top
				direction = 2
			}
			if bottom < minDist {
				direction = 3
			}

			switch direction {
			case 0:
				state.X = obs.X - radius
			case 1:
				state.X = obs.X + obs.Width + radius
			case 2:
				state.Y = obs.Y - radius
			case 3:
				state.Y = obs.Y + obs.Height + radius
			}
		} else {
			dist := math.Sqrt(distSq)
			if dist < radius {
				overlap := radius - dist
				nx := dx / dist
				ny := dy / dist
				state.X += nx * overlap
				state.Y += ny * overlap
			}
		}

		state.X = Clamp(state.X, radius, width-radius)
		state.Y = Clamp(state.Y, radius, height-radius)
	}
}
