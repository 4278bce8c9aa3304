// internal/system/combat.go
package system

import (
	"fmt"
	"math"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// TargetingPolicy selects the tie-break comparator when a tower has
// several candidates in range. Both policies are legitimate; which one
// plays better is a balance question, so it is configured, not wired in.
type TargetingPolicy int

const (
	TargetNearest  TargetingPolicy = iota // smallest squared distance
	TargetProgress                        // furthest along the route
)

// ParseTargetingPolicy maps the settings string to a policy.
func ParseTargetingPolicy(name string) (TargetingPolicy, error) {
	switch name {
	case "nearest":
		return TargetNearest, nil
	case "progress":
		return TargetProgress, nil
	}
	return TargetNearest, fmt.Errorf("system: unknown targeting policy %q", name)
}

// EffectEmitter receives the visual events the resolver produces. The
// renderer drains them; the simulation never looks at them again.
type EffectEmitter interface {
	Emit(component.VisualEffect)
}

// CombatSystem drives the per-tower targeting and damage state machine
// for direct and area towers. Slow pulses live in SlowPulseSystem.
type CombatSystem struct {
	towers     *component.TowerArena
	player     *component.PlayerState
	dispatcher *event.Dispatcher
	effects    EffectEmitter
	policy     TargetingPolicy
}

func NewCombatSystem(towers *component.TowerArena, player *component.PlayerState,
	dispatcher *event.Dispatcher, effects EffectEmitter, policy TargetingPolicy) *CombatSystem {
	return &CombatSystem{
		towers:     towers,
		player:     player,
		dispatcher: dispatcher,
		effects:    effects,
		policy:     policy,
	}
}

// Update runs one combat tick: cooldowns, target validation and
// acquisition, firing, then the kill sweep.
func (s *CombatSystem) Update(dt float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	s.towers.Each(func(tower *component.Tower) {
		def := defs.TowerLibrary[tower.Kind]
		if def.Behavior == defs.BehaviorSlow {
			return
		}
		if tower.Cooldown > 0 {
			tower.Cooldown -= dt
		}

		stats := tower.Stats()
		tx, ty := gridmap.CellCenter(tower.Cell)
		rangeSq := stats.Range * stats.Range

		// Drop the held target if it died or walked out of range.
		if tower.TargetSlot != component.NoTarget {
			target := &wave.Enemies[tower.TargetSlot]
			if !target.Active || distSq(tx, ty, target.X, target.Y) >= rangeSq {
				tower.TargetSlot = component.NoTarget
			}
		}
		if tower.TargetSlot == component.NoTarget {
			tower.TargetSlot = s.acquire(wave, tx, ty, rangeSq)
		}
		if tower.TargetSlot == component.NoTarget {
			return
		}

		target := &wave.Enemies[tower.TargetSlot]
		tower.Rotation = math.Atan2(target.Y-ty, target.X-tx)

		if tower.Cooldown > 0 {
			return
		}
		tower.Cooldown = 1.0 / stats.FireRate

		switch def.Behavior {
		case defs.BehaviorDirect:
			applyDamage(target, stats.Damage)
			s.effects.Emit(component.VisualEffect{
				Shape: component.EffectLine,
				X1:    tx, Y1: ty, X2: target.X, Y2: target.Y,
				Color: def.Visuals.Color,
			})
		case defs.BehaviorArea:
			// Damage lands uniformly first; kills resolve in the sweep
			// below, never mid-application.
			blastSq := stats.BlastRadius * stats.BlastRadius
			ix, iy := target.X, target.Y
			for i := 0; i < wave.Count; i++ {
				enemy := &wave.Enemies[i]
				if enemy.Active && distSq(ix, iy, enemy.X, enemy.Y) < blastSq {
					applyDamage(enemy, stats.Damage)
				}
			}
			s.effects.Emit(component.VisualEffect{
				Shape: component.EffectCircle,
				X1:    ix, Y1: iy, Radius: stats.BlastRadius,
				Color: def.Visuals.Color,
			})
		}
		s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: tower.Kind})

		s.sweep(wave)
	})
}

// acquire scans every active enemy strictly inside range and picks one
// by the configured policy. The comparison is a strict less-than on
// squared distances: a zero-range tower matches nothing, not even an
// enemy on its own cell.
func (s *CombatSystem) acquire(wave *component.Wave, tx, ty, rangeSq float64) int {
	best := component.NoTarget
	bestDist := math.MaxFloat64
	bestProgress := -1.0
	for i := 0; i < wave.Count; i++ {
		enemy := &wave.Enemies[i]
		if !enemy.Active {
			continue
		}
		d := distSq(tx, ty, enemy.X, enemy.Y)
		if d >= rangeSq {
			continue
		}
		switch s.policy {
		case TargetNearest:
			if d < bestDist {
				bestDist = d
				best = i
			}
		case TargetProgress:
			if enemy.Progress > bestProgress {
				bestProgress = enemy.Progress
				best = i
			}
		}
	}
	return best
}

// sweep deactivates every enemy whose health hit zero, pays the kill
// reward, and clears any tower reference to the freed slot. Runs once
// per firing tower, after its damage has been applied in full.
func (s *CombatSystem) sweep(wave *component.Wave) {
	for i := 0; i < wave.Count; i++ {
		enemy := &wave.Enemies[i]
		if !enemy.Active || enemy.Health > 0 {
			continue
		}
		enemy.Active = false
		s.player.Gold += defs.EnemyLibrary[enemy.Type].Reward
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: i})
		s.towers.Each(func(t *component.Tower) {
			if t.TargetSlot == i {
				t.TargetSlot = component.NoTarget
			}
		})
	}
}

// applyDamage lowers health, clamped into [0, MaxHealth]. Damage never
// heals; deactivation itself happens in the sweep.
func applyDamage(enemy *component.Enemy, damage int) {
	if damage < 0 {
		return
	}
	enemy.Health -= damage
	if enemy.Health < 0 {
		enemy.Health = 0
	}
}

func distSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
