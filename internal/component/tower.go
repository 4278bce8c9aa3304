// internal/component/tower.go
package component

import (
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// NoTarget marks an empty target reference.
const NoTarget = -1

// Tower occupies exactly one wall cell; the arena is indexed by cell so
// occupancy lookup is a direct array access.
type Tower struct {
	Active bool
	Kind   defs.TowerKind
	Cell   gridmap.Cell
	Level  int

	Cooldown   float64
	TargetSlot int // enemy slot index in the active wave, or NoTarget
	Invested   int // total gold paid, drives the sell refund

	Rotation float64 // cosmetic only
}

// Stats returns the stat-table row for the tower's current level.
func (t *Tower) Stats() defs.LevelStats {
	return defs.TowerLibrary[t.Kind].Levels[t.Level]
}

// TowerArena is the fixed per-cell tower pool.
type TowerArena [gridmap.Size][gridmap.Size]Tower

// At returns the tower on a cell, or nil if the cell is empty.
func (a *TowerArena) At(c gridmap.Cell) *Tower {
	if !c.InBounds() {
		return nil
	}
	if t := &a[c.X][c.Y]; t.Active {
		return t
	}
	return nil
}

// Each calls fn for every active tower.
func (a *TowerArena) Each(fn func(*Tower)) {
	for x := 0; x < gridmap.Size; x++ {
		for y := 0; y < gridmap.Size; y++ {
			if a[x][y].Active {
				fn(&a[x][y])
			}
		}
	}
}
