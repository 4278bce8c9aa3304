// internal/defs/enemies.go
package defs

import "image/color"

// EnemyType is the closed set of enemy kinds.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyScout
	EnemyTank
	EnemyBoss
	EnemyTypeCount
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"` // cells per second
	Reward  int     `json:"reward"`
	Radius  float64 `json:"radius"` // collision radius, in cells
	Visuals Visuals `json:"visuals"`
}

// EnemyLibrary maps each enemy type to its definition. Loaded at startup
// and immutable for the run; LoadEnemyDefinitions can replace the
// defaults from a JSON file.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyNormal: {
		ID: "ENEMY_NORMAL", Name: "Runner",
		Health: 30, Speed: 4.0, Reward: 5, Radius: 0.28,
		Visuals: Visuals{Color: color.RGBA{255, 0, 100, 255}},
	},
	EnemyScout: {
		ID: "ENEMY_SCOUT", Name: "Scout",
		Health: 18, Speed: 8.0, Reward: 7, Radius: 0.22,
		Visuals: Visuals{Color: color.RGBA{255, 165, 0, 255}},
	},
	EnemyTank: {
		ID: "ENEMY_TANK", Name: "Tank",
		Health: 120, Speed: 2.0, Reward: 15, Radius: 0.34,
		Visuals: Visuals{Color: color.RGBA{160, 60, 200, 255}},
	},
	EnemyBoss: {
		ID: "ENEMY_BOSS", Name: "Boss",
		Health: 2500, Speed: 1.5, Reward: 200, Radius: 0.42,
		Visuals: Visuals{Color: color.RGBA{255, 255, 255, 255}},
	},
}

// Visuals contains parameters the renderer needs for an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
}
