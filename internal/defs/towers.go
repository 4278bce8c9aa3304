// internal/defs/towers.go
package defs

import "image/color"

// TowerKind is the closed set of buildable tower kinds.
type TowerKind int

const (
	TowerGun TowerKind = iota
	TowerCannon
	TowerFrost
	TowerKindCount
)

// AttackBehavior describes how a tower resolves its shot.
type AttackBehavior string

const (
	BehaviorDirect AttackBehavior = "DIRECT" // single-target damage
	BehaviorArea   AttackBehavior = "AREA"   // damage around the target's position
	BehaviorSlow   AttackBehavior = "SLOW"   // untargeted slow pulse
)

// LevelStats is one row of the tower stat table: the numbers for a
// specific tower kind at a specific level.
type LevelStats struct {
	Cost        int     `json:"cost"`
	Range       float64 `json:"range"`                  // cells
	Damage      int     `json:"damage"`                 // unused for SLOW towers
	FireRate    float64 `json:"fire_rate"`              // shots or pulses per second
	BlastRadius float64 `json:"blast_radius,omitempty"` // AREA only, cells
	SlowFactor  float64 `json:"slow_factor,omitempty"`  // SLOW only, speed multiplier
}

// TowerDefinition holds all the static data for a tower kind.
type TowerDefinition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Behavior AttackBehavior `json:"behavior"`
	Levels   []LevelStats   `json:"levels"`
	Visuals  Visuals        `json:"visuals"`
}

// MaxLevel returns the highest reachable level index.
func (d TowerDefinition) MaxLevel() int {
	return len(d.Levels) - 1
}

// TowerLibrary maps each tower kind to its definition. Immutable after
// startup; LoadTowerDefinitions can replace the defaults from JSON.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerGun: {
		ID: "TOWER_GUN", Name: "Gun", Behavior: BehaviorDirect,
		Levels: []LevelStats{
			{Cost: 50, Range: 2.5, Damage: 8, FireRate: 2.0},
			{Cost: 40, Range: 2.8, Damage: 14, FireRate: 2.4},
			{Cost: 60, Range: 3.2, Damage: 24, FireRate: 2.8},
		},
		Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}},
	},
	TowerCannon: {
		ID: "TOWER_CANNON", Name: "Cannon", Behavior: BehaviorArea,
		Levels: []LevelStats{
			{Cost: 80, Range: 2.2, Damage: 12, FireRate: 0.8, BlastRadius: 1.0},
			{Cost: 70, Range: 2.5, Damage: 20, FireRate: 0.9, BlastRadius: 1.2},
			{Cost: 100, Range: 2.8, Damage: 34, FireRate: 1.0, BlastRadius: 1.4},
		},
		Visuals: Visuals{Color: color.RGBA{255, 120, 40, 255}},
	},
	TowerFrost: {
		ID: "TOWER_FROST", Name: "Frost", Behavior: BehaviorSlow,
		Levels: []LevelStats{
			{Cost: 60, Range: 2.0, FireRate: 1.0, SlowFactor: 0.6},
			{Cost: 50, Range: 2.3, FireRate: 1.0, SlowFactor: 0.5},
			{Cost: 70, Range: 2.6, FireRate: 1.2, SlowFactor: 0.4},
		},
		Visuals: Visuals{Color: color.RGBA{80, 160, 255, 255}},
	},
}
