package core

import "fmt"

// BiMap is a bidirectional lookup table between a comparable enum-like key
// and its string representation, grounded on StarBiMap.hpp. Wire encoders
// and JSON config loaders share one table so a name always maps to the same
// numeric tag in both directions.
type BiMap[K comparable] struct {
	forward  map[K]string
	backward map[string]K
}

// NewBiMap builds a table from ordered (key, name) pairs. Duplicate keys or
// names are a construction-time bug and panic immediately rather than
// silently shadowing an entry.
func NewBiMap[K comparable](pairs ...struct {
	Key  K
	Name string
}) *BiMap[K] {
	b := &BiMap[K]{
		forward:  make(map[K]string, len(pairs)),
		backward: make(map[string]K, len(pairs)),
	}
	for _, p := range pairs {
		if _, exists := b.forward[p.Key]; exists {
			panic(fmt.Sprintf("core.BiMap: duplicate key %v", p.Key))
		}
		if _, exists := b.backward[p.Name]; exists {
			panic(fmt.Sprintf("core.BiMap: duplicate name %q", p.Name))
		}
		b.forward[p.Key] = p.Name
		b.backward[p.Name] = p.Key
	}
	return b
}

// Name resolves a key to its configured string name.
func (b *BiMap[K]) Name(key K) (string, bool) {
	name, ok := b.forward[key]
	return name, ok
}

// Key resolves a string name back to its key.
func (b *BiMap[K]) Key(name string) (K, bool) {
	key, ok := b.backward[name]
	return key, ok
}

// MustName is Name but panics on an unregistered key; used where the key
// space is closed and fixed at compile time (e.g. wire tag bytes).
func (b *BiMap[K]) MustName(key K) string {
	name, ok := b.Name(key)
	if !ok {
		panic(fmt.Sprintf("core.BiMap: unregistered key %v", key))
	}
	return name
}
