package combat

import (
	"sort"

	"sandboxcore/server/internal/status"
	"sandboxcore/server/internal/world"
)

// HitType mirrors StarDamageTypes.hpp's HitType enum: the outcome queryHit
// reports for a source/target pair that does connect.
type HitType string

const (
	HitNormal HitType = "hit"
	HitStrong HitType = "strongHit"
	HitWeak   HitType = "weakHit"
	HitShield HitType = "shieldHit"
	HitKill   HitType = "kill"
)

// DamageSource is one tick's worth of geometric-area damage: the shape is
// left to the caller (world geometry is out of this package's scope), the
// rest mirrors the Data Model's damage-source fields directly.
type DamageSource struct {
	CausingEntityID string
	Amount          float64
	DamageType      string // Normal, IgnoresDef, Knockback, Environment, Status
	ElementalType   string
	Team            Team

	RepeatGroup   string // defaults to CausingEntityID if empty
	RepeatTimeout float64

	// Radius is the area's reach from the causing entity's current
	// position; broad phase/area intersection is a circle of this radius,
	// the simplest shape the Data Model's "geometric-area damage" permits.
	Radius float64

	Knockback        world.Vec2
	StatusEffects    []status.EphemeralEffectApplication
	RayToSourceCheck bool
}

// CandidateTarget is one entity a damage source's broad phase found, with
// just enough metadata for the pipeline to decide eligibility and routing.
type CandidateTarget struct {
	ID            string
	Team          Team
	IsLocalMaster bool
	ConnectionID  int
}

// RemoteDamageRequest is what gets enqueued for a target whose master lives
// on another connection; RemoteHitRequest is the symmetric notice delivered
// back to the causing entity so it can react via hitOther.
type RemoteDamageRequest struct {
	TargetConnectionID int
	CausingEntityID    string
	TargetEntityID     string
	Request            status.DamageRequest
}

type RemoteHitRequest struct {
	CausingConnectionID int
	CausingEntityID     string
	TargetEntityID      string
	HitType             HitType
}

// PipelineDeps supplies everything the damage pipeline needs from the world
// and entity layers without importing them directly.
type PipelineDeps struct {
	// FindCandidates runs broad phase then area intersection for one source.
	FindCandidates func(source DamageSource) []CandidateTarget
	// QueryHit reports whether source touches target and, if so, how.
	// A false second return means the source does not touch this target
	// (shield, intangible windup, invulnerable).
	QueryHit func(source DamageSource, target CandidateTarget) (HitType, bool)
	// DefaultRepeatTimeout supplies the configured-per-damage-kind timeout
	// when a source does not specify its own.
	DefaultRepeatTimeout func(damageType string) float64
	// ApplyLocal applies req to a target mastered in this process.
	ApplyLocal func(target CandidateTarget, req status.DamageRequest) []status.DamageNotification
	// EnqueueRemote delivers req to a target mastered elsewhere. May be nil
	// if every target is always local to this process.
	EnqueueRemote func(RemoteDamageRequest)
	// EnqueueRemoteHit delivers the symmetric RemoteHitRequest to the
	// causing entity's own connection. May be nil.
	EnqueueRemoteHit func(RemoteHitRequest)
}

// Pipeline drives the world-level damage loop for one tick: team
// eligibility, queryHit, repeat-suppression, and request routing.
type Pipeline struct {
	book *RepeatBook
}

// NewPipeline constructs an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{book: NewRepeatBook()}
}

// Tick ages the repeat-suppression book by dt seconds.
func (p *Pipeline) Tick(dt float64) {
	p.book.Tick(dt)
}

// ProcessSources runs one tick's damage sources through queryHit, apply,
// and notify, in causing-entity-id order so the outcome is deterministic;
// ties within one entity preserve the order sources were supplied in.
func (p *Pipeline) ProcessSources(sources []DamageSource, deps PipelineDeps) []status.DamageNotification {
	ordered := append([]DamageSource(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CausingEntityID < ordered[j].CausingEntityID
	})

	var notifications []status.DamageNotification
	for _, source := range ordered {
		if deps.FindCandidates == nil || deps.QueryHit == nil {
			continue
		}
		for _, target := range deps.FindCandidates(source) {
			if !CanDamage(source.Team, target.Team) {
				continue
			}
			hitType, touched := deps.QueryHit(source, target)
			if !touched {
				continue
			}

			group := source.RepeatGroup
			if group == "" {
				group = source.CausingEntityID
			}
			if !p.book.Ready(target.ID, group) {
				continue
			}
			timeout := source.RepeatTimeout
			if timeout <= 0 && deps.DefaultRepeatTimeout != nil {
				timeout = deps.DefaultRepeatTimeout(source.DamageType)
			}
			p.book.Insert(target.ID, group, timeout)

			req := status.DamageRequest{
				SourceEntityID:   source.CausingEntityID,
				TargetEntityID:   target.ID,
				Amount:           source.Amount,
				DamageType:       source.DamageType,
				ElementalType:    source.ElementalType,
				Knockback:        source.Knockback,
				HitType:          string(hitType),
				EphemeralEffects: source.StatusEffects,
			}

			if target.IsLocalMaster {
				if deps.ApplyLocal != nil {
					notifications = append(notifications, deps.ApplyLocal(target, req)...)
				}
			} else if deps.EnqueueRemote != nil {
				deps.EnqueueRemote(RemoteDamageRequest{
					TargetConnectionID: target.ConnectionID,
					CausingEntityID:    source.CausingEntityID,
					TargetEntityID:     target.ID,
					Request:            req,
				})
			}

			if deps.EnqueueRemoteHit != nil {
				deps.EnqueueRemoteHit(RemoteHitRequest{
					CausingEntityID: source.CausingEntityID,
					TargetEntityID:  target.ID,
					HitType:         hitType,
				})
			}
		}
	}
	return notifications
}
