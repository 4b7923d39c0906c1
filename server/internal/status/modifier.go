package status

// ModifierKind distinguishes the three ways a modifier can act on a stat.
type ModifierKind int

const (
	// BaseMultiplier scales the stat's base value before additive modifiers apply.
	BaseMultiplier ModifierKind = iota
	// ValueModifier adds a flat delta after base multipliers, before effective multipliers.
	ValueModifier
	// EffectiveMultiplier scales the fully-assembled value last.
	EffectiveMultiplier
)

// Modifier is one contribution to a named stat. Final = ((base * Π
// baseMultipliers) + Σ valueModifiers) * Π effectiveMultipliers, with
// multiple categories applying independently and order-insensitively since
// both layers only ever sum or multiply.
type Modifier struct {
	Kind   ModifierKind
	Stat   string
	Factor float64 // BaseMultiplier / EffectiveMultiplier
	Delta  float64 // ValueModifier
}

// resolveStats folds every category's modifiers onto base, producing the
// final stat table. Categories are visited in map order; because each
// modifier only ever adds or multiplies into a running total, the result
// does not depend on that order.
func resolveStats(base map[string]float64, categories map[string][]Modifier) map[string]float64 {
	baseMul := make(map[string]float64, len(base))
	valSum := make(map[string]float64, len(base))
	effMul := make(map[string]float64, len(base))
	for stat := range base {
		baseMul[stat] = 1
		effMul[stat] = 1
	}

	touch := func(stat string) {
		if _, ok := baseMul[stat]; !ok {
			baseMul[stat] = 1
		}
		if _, ok := effMul[stat]; !ok {
			effMul[stat] = 1
		}
	}

	for _, mods := range categories {
		for _, m := range mods {
			touch(m.Stat)
			switch m.Kind {
			case BaseMultiplier:
				baseMul[m.Stat] *= m.Factor
			case ValueModifier:
				valSum[m.Stat] += m.Delta
			case EffectiveMultiplier:
				effMul[m.Stat] *= m.Factor
			}
		}
	}

	out := make(map[string]float64, len(baseMul))
	for stat := range baseMul {
		out[stat] = (base[stat]*baseMul[stat] + valSum[stat]) * effMul[stat]
	}
	return out
}
