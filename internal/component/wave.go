// internal/component/wave.go
package component

import "github.com/amirh0ss3in/TD0/internal/config"

// Wave owns the fixed enemy pool for the current wave. A fresh Wave is
// created per wave number; composition and per-instance max health never
// change after creation, only the per-slot live state does.
type Wave struct {
	Number       int
	Enemies      [config.MaxEnemiesPerWave]Enemy
	Count        int // declared size of this wave, <= pool capacity
	Spawned      int
	SpawnTimer   float64
	HealthMult   float64
	FullySpawned bool
}

// ActiveCount scans the pool for live enemies.
func (w *Wave) ActiveCount() int {
	n := 0
	for i := 0; i < w.Count; i++ {
		if w.Enemies[i].Active {
			n++
		}
	}
	return n
}

// Finished reports whether the wave is over: everything spawned and
// nothing left alive. FullySpawned alone is not enough.
func (w *Wave) Finished() bool {
	return w.FullySpawned && w.ActiveCount() == 0
}
