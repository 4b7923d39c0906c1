package status

import "testing"

func newTestController() *Controller {
	return New(Config{
		BaseStats: map[string]float64{"maxHealth": 100, "invulnerable": 0},
		Resources: []ResourceConfig{
			{Name: "health", Initial: 0, MaxExpr: func(stats map[string]float64) float64 { return stats["maxHealth"] }},
			{Name: "energy", Initial: 10},
		},
	})
}

func TestConsumeResourceFailsWhenInsufficient(t *testing.T) {
	c := newTestController()
	c.GiveResource("energy", 0) // energy starts at 10

	ok, err := c.ConsumeResource("energy", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected consume to fail")
	}
	snap, _ := c.Resource("energy")
	if snap.Current != 10 {
		t.Fatalf("expected unchanged current, got %v", snap.Current)
	}
}

func TestConsumeResourceSucceedsAndSubtracts(t *testing.T) {
	c := newTestController()
	ok, err := c.ConsumeResource("energy", 4)
	if err != nil || !ok {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	snap, _ := c.Resource("energy")
	if snap.Current != 6 {
		t.Fatalf("expected 6, got %v", snap.Current)
	}
}

func TestOverConsumeResourceClampsAtZero(t *testing.T) {
	c := newTestController()
	fullySucceeded, err := c.OverConsumeResource("energy", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fullySucceeded {
		t.Fatalf("expected partial success report")
	}
	snap, _ := c.Resource("energy")
	if snap.Current != 0 {
		t.Fatalf("expected clamp to 0, got %v", snap.Current)
	}
}

func TestGiveResourceRespectsMax(t *testing.T) {
	c := newTestController()
	c.GiveResource("health", 1000)
	snap, _ := c.Resource("health")
	if snap.Current != 100 {
		t.Fatalf("expected clamp to max 100, got %v", snap.Current)
	}
}

func TestUnknownResourceReturnsError(t *testing.T) {
	c := newTestController()
	if _, err := c.ConsumeResource("mana", 1); err != ErrUnknownResource {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	if _, err := c.OverConsumeResource("mana", 1); err != ErrUnknownResource {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	if err := c.GiveResource("mana", 1); err != ErrUnknownResource {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
}

func TestResourceMaxRecomputesOnModifierChange(t *testing.T) {
	c := newTestController()
	c.SetModifierCategory("innate", []Modifier{{Kind: BaseMultiplier, Stat: "maxHealth", Factor: 2.0}})
	snap, _ := c.Resource("health")
	if snap.Max != 200 {
		t.Fatalf("expected max to double to 200, got %v", snap.Max)
	}
}
