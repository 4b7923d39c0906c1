package status

import "testing"

func TestResolveStatsAppliesAllThreeModifierKinds(t *testing.T) {
	base := map[string]float64{"power": 10}
	categories := map[string][]Modifier{
		"gear": {
			{Kind: BaseMultiplier, Stat: "power", Factor: 2},
			{Kind: ValueModifier, Stat: "power", Delta: 5},
		},
		"buff": {
			{Kind: EffectiveMultiplier, Stat: "power", Factor: 1.5},
		},
	}
	// (10*2 + 5) * 1.5 = 37.5
	got := resolveStats(base, categories)["power"]
	if got != 37.5 {
		t.Fatalf("expected 37.5, got %v", got)
	}
}

func TestResolveStatsIsOrderInsensitiveAcrossCategories(t *testing.T) {
	base := map[string]float64{"power": 10}
	a := map[string][]Modifier{
		"x": {{Kind: BaseMultiplier, Stat: "power", Factor: 1.5}},
		"y": {{Kind: ValueModifier, Stat: "power", Delta: 3}},
	}
	b := map[string][]Modifier{
		"y": {{Kind: ValueModifier, Stat: "power", Delta: 3}},
		"x": {{Kind: BaseMultiplier, Stat: "power", Factor: 1.5}},
	}
	if resolveStats(base, a)["power"] != resolveStats(base, b)["power"] {
		t.Fatalf("expected category application order to not matter")
	}
}

func TestSetModifierCategoryClearsOnEmpty(t *testing.T) {
	c := newTestController()
	c.SetModifierCategory("innate", []Modifier{{Kind: BaseMultiplier, Stat: "maxHealth", Factor: 2.0}})
	c.SetModifierCategory("innate", nil)
	snap, _ := c.Resource("health")
	if snap.Max != 100 {
		t.Fatalf("expected max back to 100 after clearing category, got %v", snap.Max)
	}
}
