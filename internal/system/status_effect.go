// internal/system/status_effect.go
package system

import "github.com/amirh0ss3in/TD0/internal/component"

// StatusEffectSystem runs down slow timers. The applied speed multiplier
// stays in force while the timer is positive and snaps back to 1.0 the
// tick it expires.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

func (s *StatusEffectSystem) Update(dt float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	for i := 0; i < wave.Count; i++ {
		enemy := &wave.Enemies[i]
		if !enemy.Active || enemy.SlowTimer <= 0 {
			continue
		}
		enemy.SlowTimer -= dt
		if enemy.SlowTimer <= 0 {
			enemy.SlowTimer = 0
			enemy.SpeedMult = 1.0
		}
	}
}
