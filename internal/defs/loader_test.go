package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTargetDefinitions(t *testing.T) {
	path := writeDefs(t, `[
		{
			"id": "small", "kind": "normal", "weight": 5,
			"min_radius": 10, "max_radius": 20,
			"min_speed": 80, "max_speed": 160,
			"min_lifetime": 4, "max_lifetime": 8,
			"random_color": true
		},
		{
			"id": "mine", "kind": "bomb", "weight": 1,
			"min_radius": 25, "max_radius": 40,
			"min_speed": 50, "max_speed": 90,
			"min_lifetime": 6, "max_lifetime": 12,
			"color": {"r": 255, "g": 0, "b": 0}
		}
	]`)

	if err := LoadTargetDefinitions(path); err != nil {
		t.Fatal(err)
	}
	if len(TargetLibrary) != 2 {
		t.Fatalf("loaded %d definitions, want 2", len(TargetLibrary))
	}

	small, ok := TargetLibrary["small"]
	if !ok || small.Kind != KindNormal || small.Weight != 5 || !small.RandomColor {
		t.Fatalf("definition %q broken: %+v", "small", small)
	}
	mine := TargetLibrary["mine"]
	if mine.Kind != KindBomb || mine.Color.R != 255 {
		t.Fatalf("definition %q broken: %+v", "mine", mine)
	}
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	if err := LoadTargetDefinitions(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(TargetLibrary) == 0 {
		t.Fatal("built-in defaults must be loaded")
	}

	haveNormal, haveBomb := false, false
	for _, def := range TargetLibrary {
		switch def.Kind {
		case KindNormal:
			haveNormal = true
		case KindBomb:
			haveBomb = true
		}
	}
	if !haveNormal || !haveBomb {
		t.Fatal("defaults must cover both target kinds")
	}
}

func TestInvalidDefinitionsRejected(t *testing.T) {
	cases := map[string]string{
		"empty id": `[{"id": "", "kind": "normal", "weight": 1,
			"min_radius": 10, "max_radius": 20,
			"min_speed": 50, "max_speed": 90,
			"min_lifetime": 5, "max_lifetime": 10}]`,
		"unknown kind": `[{"id": "x", "kind": "meteor", "weight": 1,
			"min_radius": 10, "max_radius": 20,
			"min_speed": 50, "max_speed": 90,
			"min_lifetime": 5, "max_lifetime": 10}]`,
		"inverted radius range": `[{"id": "x", "kind": "normal", "weight": 1,
			"min_radius": 30, "max_radius": 20,
			"min_speed": 50, "max_speed": 90,
			"min_lifetime": 5, "max_lifetime": 10}]`,
		"not json": `{oops`,
	}

	for name, content := range cases {
		if err := LoadTargetDefinitions(writeDefs(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
