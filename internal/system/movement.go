// internal/system/movement.go
package system

import (
	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// MovementSystem advances every active enemy along the precomputed
// route and resolves leaks against player health.
type MovementSystem struct {
	path       []gridmap.Cell
	player     *component.PlayerState
	dispatcher *event.Dispatcher
}

// NewMovementSystem wires the motion model to the route and run state.
func NewMovementSystem(path []gridmap.Cell, player *component.PlayerState, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{path: path, player: player, dispatcher: dispatcher}
}

// Update moves all active enemies by dt. Each enemy accumulates
// traversed distance (dt × effective speed, segments are one cell
// long), so remainders carry across cell boundaries and a mid-segment
// speed change only scales future advancement — the covered part of
// the segment is never revalued, and progress never moves backward.
func (s *MovementSystem) Update(dt float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	last := len(s.path) - 1
	for i := 0; i < wave.Count; i++ {
		enemy := &wave.Enemies[i]
		if !enemy.Active {
			continue
		}
		if enemy.PathIndex >= last {
			s.leak(enemy)
			continue
		}

		def := defs.EnemyLibrary[enemy.Type]
		speed := def.Speed * enemy.SpeedMult

		enemy.SegmentFrac += dt * speed
		for enemy.SegmentFrac >= 1 {
			enemy.SegmentFrac--
			enemy.PathIndex++
			if enemy.PathIndex >= last {
				break
			}
		}
		if enemy.PathIndex >= last {
			enemy.X, enemy.Y = gridmap.CellCenter(s.path[last])
			enemy.Progress = float64(last)
			s.leak(enemy)
			continue
		}

		enemy.X, enemy.Y = gridmap.Lerp(s.path[enemy.PathIndex], s.path[enemy.PathIndex+1], enemy.SegmentFrac)
		enemy.Progress = float64(enemy.PathIndex) + enemy.SegmentFrac
	}
}

// leak removes an enemy that reached the finish and charges the player.
func (s *MovementSystem) leak(enemy *component.Enemy) {
	enemy.Active = false
	s.player.Health -= config.LeakDamage
	if s.player.Health < 0 {
		s.player.Health = 0
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked})
	if s.player.Health == 0 && s.player.Phase == component.Playing {
		s.player.Phase = component.GameOver
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}
