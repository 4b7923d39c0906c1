package script

import (
	"testing"

	"sandboxcore/server/internal/status"
)

func newTestStatusController() *status.Controller {
	return status.New(status.Config{
		BaseStats: map[string]float64{"maxHealth": 100},
		Resources: []status.ResourceConfig{
			{Name: "health", Initial: 100, MaxExpr: func(stats map[string]float64) float64 { return stats["maxHealth"] }},
		},
	})
}

func TestStatusBindingResourceAndConsume(t *testing.T) {
	s := StatusBinding{Controller: newTestStatusController()}
	snap, ok := s.Resource("health")
	if !ok || snap.Current != 100 {
		t.Fatalf("expected health 100, got %+v ok=%v", snap, ok)
	}
	ok2, err := s.ConsumeResource("health", 40)
	if err != nil || !ok2 {
		t.Fatalf("expected consume to succeed, err=%v ok=%v", err, ok2)
	}
	snap, _ = s.Resource("health")
	if snap.Current != 60 {
		t.Fatalf("expected health 60 after consume, got %v", snap.Current)
	}
}

func TestStatusBindingNilSafe(t *testing.T) {
	var s StatusBinding
	if v := s.Stat("anything"); v != 0 {
		t.Fatalf("expected zero stat for unbound binding")
	}
	if _, ok := s.Resource("health"); ok {
		t.Fatalf("expected unbound binding to report no resource")
	}
}
