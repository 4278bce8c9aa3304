// internal/system/wave.go
package system

import (
	"log"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// ComposeWave returns the ordered composition and health multiplier for
// a wave number. Deterministic: the same number always composes the same
// wave. The final wave is a single boss with the multiplier reset to 1.0
// so its health comes entirely from its own base stat.
func ComposeWave(waveNumber, finalWave int) ([]defs.TypeCount, float64) {
	if waveNumber >= finalWave {
		return []defs.TypeCount{{Type: defs.EnemyBoss, Count: 1}}, 1.0
	}

	mult := 1.0 + config.HealthMultStep*float64(waveNumber-1)

	comp, ok := defs.WavePatterns[waveNumber]
	if !ok {
		comp = []defs.TypeCount{
			{Type: defs.EnemyNormal, Count: defs.WaveBaseNormalCount + defs.WaveNormalPerWave*waveNumber},
		}
		if waveNumber >= defs.WaveScoutFromWave {
			comp = append(comp, defs.TypeCount{Type: defs.EnemyScout, Count: waveNumber})
		}
		if waveNumber >= defs.WaveTankFromWave {
			comp = append(comp, defs.TypeCount{Type: defs.EnemyTank, Count: waveNumber - defs.WaveTankFromWave + 1})
		}
	}
	return capComposition(comp, config.MaxEnemiesPerWave), mult
}

// capComposition trims counts so the total fits the pool.
func capComposition(comp []defs.TypeCount, capacity int) []defs.TypeCount {
	total := 0
	out := make([]defs.TypeCount, 0, len(comp))
	for _, tc := range comp {
		if total+tc.Count > capacity {
			tc.Count = capacity - total
		}
		if tc.Count <= 0 {
			break
		}
		out = append(out, tc)
		total += tc.Count
	}
	return out
}

// WaveSystem creates waves and drip-feeds their members into play.
type WaveSystem struct {
	path       []gridmap.Cell
	dispatcher *event.Dispatcher
	finalWave  int
}

// NewWaveSystem wires the sequencer to the route and event bus.
func NewWaveSystem(path []gridmap.Cell, dispatcher *event.Dispatcher, finalWave int) *WaveSystem {
	return &WaveSystem{path: path, dispatcher: dispatcher, finalWave: finalWave}
}

// StartWave builds the fixed pool for a wave number. Slot types and max
// health are assigned up front and never change; only live state mutates
// after this point.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	comp, mult := ComposeWave(waveNumber, s.finalWave)

	w := &component.Wave{Number: waveNumber, HealthMult: mult}
	for _, tc := range comp {
		def, ok := defs.EnemyLibrary[tc.Type]
		if !ok {
			log.Printf("wave: no enemy definition for type %d, skipping", tc.Type)
			continue
		}
		for i := 0; i < tc.Count && w.Count < config.MaxEnemiesPerWave; i++ {
			slot := &w.Enemies[w.Count]
			*slot = component.Enemy{
				Type:      tc.Type,
				MaxHealth: int(float64(def.Health) * mult),
			}
			w.Count++
		}
	}
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})
	return w
}

// Update advances the spawn sequencer. The timer resets to zero on each
// trigger rather than carrying overflow, so spawn cadence drifts by up
// to one frame per enemy. The motion timers deliberately do carry; the
// balance numbers are tuned around that asymmetry.
func (s *WaveSystem) Update(dt float64, wave *component.Wave) {
	if wave == nil || wave.FullySpawned {
		return
	}
	wave.SpawnTimer += dt
	if wave.SpawnTimer >= config.SpawnInterval {
		wave.SpawnTimer = 0
		s.spawn(wave)
	}
	if wave.Spawned >= wave.Count {
		wave.FullySpawned = true
	}
}

func (s *WaveSystem) spawn(wave *component.Wave) {
	if wave.Spawned >= wave.Count {
		return
	}
	slot := &wave.Enemies[wave.Spawned]
	x, y := gridmap.CellCenter(s.path[0])
	slot.Active = true
	slot.X, slot.Y = x, y
	slot.PathIndex = 0
	slot.SegmentFrac = 0
	slot.Progress = 0
	slot.Health = slot.MaxHealth
	slot.SpeedMult = 1.0
	slot.SlowTimer = 0
	wave.Spawned++
}
