// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// The defaults compiled into EnemyLibrary and TowerLibrary are canonical.
// The JSON loaders exist for balance iteration: drop an enemies.json or
// towers.json next to the binary and the tables are replaced wholesale.

type enemyFile struct {
	Type EnemyType `json:"type"`
	EnemyDefinition
}

type towerFile struct {
	Kind TowerKind `json:"kind"`
	TowerDefinition
}

// LoadEnemyDefinitions replaces EnemyLibrary from a JSON file.
func LoadEnemyDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read enemy definitions: %w", err)
	}
	var entries []enemyFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("defs: unmarshal enemy definitions: %w", err)
	}
	lib := make(map[EnemyType]EnemyDefinition, len(entries))
	for _, e := range entries {
		if e.Type < 0 || e.Type >= EnemyTypeCount {
			return fmt.Errorf("defs: enemy %q has unknown type %d", e.ID, e.Type)
		}
		lib[e.Type] = e.EnemyDefinition
	}
	EnemyLibrary = lib
	log.Printf("defs: loaded %d enemy definitions from %s", len(lib), path)
	return nil
}

// LoadTowerDefinitions replaces TowerLibrary from a JSON file.
func LoadTowerDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read tower definitions: %w", err)
	}
	var entries []towerFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("defs: unmarshal tower definitions: %w", err)
	}
	lib := make(map[TowerKind]TowerDefinition, len(entries))
	for _, t := range entries {
		if t.Kind < 0 || t.Kind >= TowerKindCount {
			return fmt.Errorf("defs: tower %q has unknown kind %d", t.ID, t.Kind)
		}
		if len(t.Levels) == 0 {
			return fmt.Errorf("defs: tower %q has no levels", t.ID)
		}
		lib[t.Kind] = t.TowerDefinition
	}
	TowerLibrary = lib
	log.Printf("defs: loaded %d tower definitions from %s", len(lib), path)
	return nil
}
