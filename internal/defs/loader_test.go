// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDefs(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Library replacement is global; every test that loads must restore.
func saveLibraries(t *testing.T) {
	t.Helper()
	enemies := EnemyLibrary
	towers := TowerLibrary
	t.Cleanup(func() {
		EnemyLibrary = enemies
		TowerLibrary = towers
	})
}

func TestLoadEnemyDefinitions(t *testing.T) {
	saveLibraries(t)
	path := writeDefs(t, "enemies.json", `[
		{"type": 0, "id": "grunt", "name": "Grunt", "health": 99, "speed": 3.5, "reward": 4, "radius": 0.3}
	]`)
	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("LoadEnemyDefinitions: %v", err)
	}
	def, ok := EnemyLibrary[EnemyNormal]
	if !ok {
		t.Fatal("normal enemy missing after load")
	}
	if def.ID != "grunt" || def.Health != 99 || def.Speed != 3.5 {
		t.Errorf("loaded def = %+v", def)
	}
	// Replacement is wholesale: types absent from the file are gone.
	if _, ok := EnemyLibrary[EnemyBoss]; ok {
		t.Error("boss survived a wholesale replacement that omitted it")
	}
}

func TestLoadEnemyDefinitionsRejectsUnknownType(t *testing.T) {
	saveLibraries(t)
	path := writeDefs(t, "enemies.json", `[{"type": 99, "id": "mystery"}]`)
	if err := LoadEnemyDefinitions(path); err == nil {
		t.Error("expected error for unknown enemy type")
	}
}

func TestLoadTowerDefinitions(t *testing.T) {
	saveLibraries(t)
	path := writeDefs(t, "towers.json", `[
		{"kind": 0, "id": "mg", "name": "Machine Gun", "behavior": "DIRECT",
		 "levels": [{"cost": 10, "range": 3.0, "damage": 2, "fire_rate": 5.0}]}
	]`)
	if err := LoadTowerDefinitions(path); err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	def := TowerLibrary[TowerGun]
	if def.ID != "mg" || def.Behavior != BehaviorDirect {
		t.Errorf("loaded def = %+v", def)
	}
	if len(def.Levels) != 1 || def.Levels[0].FireRate != 5.0 {
		t.Errorf("levels = %+v", def.Levels)
	}
	if def.MaxLevel() != 0 {
		t.Errorf("max level = %d, want 0", def.MaxLevel())
	}
}

func TestLoadTowerDefinitionsRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown kind", `[{"kind": 42, "id": "odd", "levels": [{"cost": 1}]}]`},
		{"no levels", `[{"kind": 0, "id": "hollow", "levels": []}]`},
		{"malformed", `{"kind": 0`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			saveLibraries(t)
			path := writeDefs(t, "towers.json", tc.json)
			if err := LoadTowerDefinitions(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := LoadEnemyDefinitions("nope.json"); err == nil {
		t.Error("expected error for missing enemy file")
	}
	if err := LoadTowerDefinitions("nope.json"); err == nil {
		t.Error("expected error for missing tower file")
	}
}

func TestDefaultLibrariesComplete(t *testing.T) {
	for typ := EnemyType(0); typ < EnemyTypeCount; typ++ {
		def, ok := EnemyLibrary[typ]
		if !ok {
			t.Errorf("no definition for enemy type %d", typ)
			continue
		}
		if def.Health <= 0 || def.Speed <= 0 {
			t.Errorf("enemy %q has degenerate stats: %+v", def.ID, def)
		}
	}
	for kind := TowerKind(0); kind < TowerKindCount; kind++ {
		def, ok := TowerLibrary[kind]
		if !ok {
			t.Errorf("no definition for tower kind %d", kind)
			continue
		}
		if len(def.Levels) == 0 {
			t.Errorf("tower %q has no levels", def.ID)
			continue
		}
		for i, lv := range def.Levels {
			if lv.Cost <= 0 || lv.FireRate <= 0 {
				t.Errorf("tower %q level %d has degenerate stats: %+v", def.ID, i, lv)
			}
		}
	}
}
