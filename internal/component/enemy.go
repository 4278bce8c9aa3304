// internal/component/enemy.go
package component

import "github.com/amirh0ss3in/TD0/internal/defs"

// Enemy is one slot in a wave's fixed pool. Slots are reused across
// waves; Active distinguishes live enemies from spent or unspawned ones.
type Enemy struct {
	Active bool
	Type   defs.EnemyType

	// World position in cell units, interpolated between path cells.
	X, Y float64

	PathIndex   int     // index of the segment's start cell
	SegmentFrac float64 // fraction of the current segment traversed
	Progress    float64 // PathIndex + SegmentFrac, for targeting

	Health    int
	MaxHealth int // base health × wave multiplier, fixed at spawn

	SpeedMult float64 // 1.0 nominal, lowered while slowed
	SlowTimer float64 // remaining slow duration
}

// Slowed reports whether a slow effect is currently applied.
func (e *Enemy) Slowed() bool {
	return e.SlowTimer > 0
}

// HealthFraction is the renderer's health-bar value.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth == 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
