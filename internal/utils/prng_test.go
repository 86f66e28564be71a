package utils

import (
	"testing"

	"github.com/nxu-game/gaze-laser-game/internal/defs"
)

func TestSeededSequencesMatch(t *testing.T) {
	a := NewPRNGService(123)
	b := NewPRNGService(123)
	for i := 0; i < 50; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRangeStaysInBounds(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(20, 50)
		if v < 20 || v >= 50 {
			t.Fatalf("value %f outside [20, 50)", v)
		}
	}
}

func TestChooseWeightedTarget(t *testing.T) {
	entries := []defs.TargetDefinition{
		{ID: "heavy", Weight: 99},
		{ID: "rare", Weight: 1},
	}

	s := NewPRNGService(7)
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[s.ChooseWeightedTarget(entries)]++
	}

	if counts["heavy"] == 0 || counts["rare"] == 0 {
		t.Fatalf("both entries must be reachable: %v", counts)
	}
	if counts["heavy"] <= counts["rare"] {
		t.Fatalf("weights ignored: %v", counts)
	}
}

func TestChooseWeightedTargetDegenerateCases(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeightedTarget(nil); got != "" {
		t.Fatalf("empty slice must yield empty id, got %q", got)
	}

	zero := []defs.TargetDefinition{{ID: "only", Weight: 0}}
	if got := s.ChooseWeightedTarget(zero); got != "only" {
		t.Fatalf("zero total weight must fall back to the first entry, got %q", got)
	}
}
