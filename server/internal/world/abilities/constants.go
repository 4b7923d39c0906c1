package abilities

import "time"

const (
	// FireballCooldown mirrors the legacy projectile cadence for fireball casts.
	FireballCooldown = 650 * time.Millisecond
)
