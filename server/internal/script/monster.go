package script

import "sandboxcore/server/internal/core"

// MonsterBinding mirrors the "monster" callback table of StarMonster.cpp's
// makeMonsterCallbacks: variant identity plus the handful of mutable
// knobs a monster script commonly drives (aggression, damage-on-touch,
// drop pool, team, death dressing).
type MonsterBinding struct {
	Type             func() string
	Seed             func() string
	UniqueParameters func() core.Json
	Level            func() float64

	SetDamageOnTouch func(bool)
	SetAggressive    func(bool)
	SetDamageTeam    func(teamType string, teamNumber int)
	SetDropPool      func(core.Json)

	SetDeathParticleBurst func(string)
	SetDeathSound         func(string)
}

func (m MonsterBinding) TypeName() string {
	if m.Type == nil {
		return ""
	}
	return m.Type()
}

func (m MonsterBinding) MarkAggressive(aggressive bool) {
	if m.SetAggressive == nil {
		return
	}
	m.SetAggressive(aggressive)
}

func (m MonsterBinding) MarkDamageOnTouch(active bool) {
	if m.SetDamageOnTouch == nil {
		return
	}
	m.SetDamageOnTouch(active)
}
