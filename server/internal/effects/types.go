package effects

import runtime "sandboxcore/server/internal/effects/runtime"

type (
	StatusEffectType     = runtime.StatusEffectType
	State                = runtime.State
	ProjectileTemplate   = runtime.ProjectileTemplate
	CollisionShapeConfig = runtime.CollisionShapeConfig
	TravelModeConfig     = runtime.TravelModeConfig
	ImpactRuleConfig     = runtime.ImpactRuleConfig
	ExplosionSpec        = runtime.ExplosionSpec
	ProjectileState      = runtime.ProjectileState
)
