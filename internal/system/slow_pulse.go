// internal/system/slow_pulse.go
package system

import (
	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// SlowPulseSystem handles support towers. A pulse needs no target: every
// active enemy strictly inside range gets the slow factor applied and
// its timer refreshed, so an enemy camped by a frost tower stays slowed
// continuously.
type SlowPulseSystem struct {
	towers     *component.TowerArena
	dispatcher *event.Dispatcher
	effects    EffectEmitter
}

func NewSlowPulseSystem(towers *component.TowerArena, dispatcher *event.Dispatcher, effects EffectEmitter) *SlowPulseSystem {
	return &SlowPulseSystem{towers: towers, dispatcher: dispatcher, effects: effects}
}

func (s *SlowPulseSystem) Update(dt float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	s.towers.Each(func(tower *component.Tower) {
		def := defs.TowerLibrary[tower.Kind]
		if def.Behavior != defs.BehaviorSlow {
			return
		}
		if tower.Cooldown > 0 {
			tower.Cooldown -= dt
			return
		}

		stats := tower.Stats()
		tower.Cooldown = 1.0 / stats.FireRate

		tx, ty := gridmap.CellCenter(tower.Cell)
		rangeSq := stats.Range * stats.Range
		// Refresh slightly past the next pulse so the effect holds
		// between pulses instead of flickering.
		duration := 1.0/stats.FireRate + config.SlowGracePeriod

		hit := false
		for i := 0; i < wave.Count; i++ {
			enemy := &wave.Enemies[i]
			if !enemy.Active || distSq(tx, ty, enemy.X, enemy.Y) >= rangeSq {
				continue
			}
			enemy.SpeedMult = stats.SlowFactor
			enemy.SlowTimer = duration
			hit = true
		}
		if hit {
			s.effects.Emit(component.VisualEffect{
				Shape: component.EffectCircle,
				X1:    tx, Y1: ty, Radius: stats.Range,
				Color: def.Visuals.Color,
			})
			s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: tower.Kind})
		}
	})
}
