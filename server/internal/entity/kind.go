// Package entity implements the composition root every simulated object in
// the world is built from: a movement controller, a status controller, a
// networked animator, a script context, and any kind-specific variant
// state, all sharing one process-wide net-element version counter.
package entity

// Kind tags an entity's variant. Entities are a closed tagged union, not a
// class hierarchy: a Monster is never a Player with extra fields, it is an
// Entity whose Kind is KindMonster and whose Variant holds *MonsterData.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindNpc
	KindMonster
	KindItemDrop
	KindProjectile
	KindObject
	KindPlant
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNpc:
		return "npc"
	case KindMonster:
		return "monster"
	case KindItemDrop:
		return "itemDrop"
	case KindProjectile:
		return "projectile"
	case KindObject:
		return "object"
	case KindPlant:
		return "plant"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Mode fixes whether an entity is the authoritative copy or a mirror, for
// its whole lifetime.
type Mode uint8

const (
	ModeMaster Mode = iota
	ModeSlave
)
