// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/internal/system"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// ErrNoRoute is returned at startup when the map has no walkable route
// between its start and finish markers.
var ErrNoRoute = errors.New("app: no walkable route between start and finish")

// Game is the explicit simulation context: every piece of run state
// lives here and is threaded into the systems, no package globals. One
// caller invokes Update once per frame; everything is single-threaded.
type Game struct {
	Grid   *gridmap.Grid
	Path   []gridmap.Cell
	Player component.PlayerState
	Towers component.TowerArena
	Wave   *component.Wave

	Dispatcher *event.Dispatcher
	Settings   config.Settings

	waveSystem         *system.WaveSystem
	movementSystem     *system.MovementSystem
	statusEffectSystem *system.StatusEffectSystem
	slowPulseSystem    *system.SlowPulseSystem
	combatSystem       *system.CombatSystem

	selected gridmap.Cell
	hasSel   bool

	effects  []component.VisualEffect
	gameTime float64
}

// NewGame validates the map, computes the route once, and wires the
// systems. The route is never recomputed: towers sit on wall cells and
// do not affect walkability.
func NewGame(grid *gridmap.Grid, settings config.Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	path, ok := gridmap.FindPath(grid, grid.Start, grid.Finish)
	if !ok {
		return nil, ErrNoRoute
	}
	policy, err := system.ParseTargetingPolicy(settings.TargetingPolicy)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Grid:       grid,
		Path:       path,
		Dispatcher: event.NewDispatcher(),
		Settings:   settings,
	}
	g.resetRun()

	g.waveSystem = system.NewWaveSystem(path, g.Dispatcher, settings.FinalWave)
	g.movementSystem = system.NewMovementSystem(path, &g.Player, g.Dispatcher)
	g.statusEffectSystem = system.NewStatusEffectSystem()
	g.slowPulseSystem = system.NewSlowPulseSystem(&g.Towers, g.Dispatcher, g)
	g.combatSystem = system.NewCombatSystem(&g.Towers, &g.Player, g.Dispatcher, g, policy)
	return g, nil
}

// NewGameFromMap loads a map file and builds a game on it.
func NewGameFromMap(mapPath string, settings config.Settings) (*Game, error) {
	grid, err := gridmap.LoadMap(mapPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return NewGame(grid, settings)
}

func (g *Game) resetRun() {
	g.Player = component.PlayerState{
		Health: g.Settings.BaseHealth,
		Gold:   g.Settings.StartingGold,
		Phase:  component.WaveTransition,
	}
	g.Towers = component.TowerArena{}
	g.Wave = nil
	g.selected = gridmap.Cell{}
	g.hasSel = false
	g.effects = g.effects[:0]
	g.gameTime = 0
}

// Update advances the simulation by one frame. The order inside a tick
// is fixed: spawn, motion, combat, completion check — combat reads
// post-motion positions and the completion check reads post-combat
// deactivations.
func (g *Game) Update(deltaTime float64) {
	if g.Player.Paused {
		return
	}
	dt := deltaTime * g.Speed()
	g.gameTime += dt

	if g.Player.Phase != component.Playing {
		return
	}

	g.waveSystem.Update(dt, g.Wave)
	g.statusEffectSystem.Update(dt, g.Wave)
	g.movementSystem.Update(dt, g.Wave)
	g.slowPulseSystem.Update(dt, g.Wave)
	g.combatSystem.Update(dt, g.Wave)

	g.checkWaveCompletion()
}

func (g *Game) checkWaveCompletion() {
	if g.Player.Phase != component.Playing || g.Wave == nil || !g.Wave.Finished() {
		return
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.Wave.Number})
	if g.Player.WaveNumber >= g.Settings.FinalWave {
		g.Player.Phase = component.Victory
		g.Dispatcher.Dispatch(event.Event{Type: event.Victory})
		return
	}
	g.Player.Phase = component.WaveTransition
}

// StartNextWave begins the next wave. Valid only between waves.
func (g *Game) StartNextWave() ActionResult {
	if g.Player.Phase != component.WaveTransition {
		return Denied(ReasonWrongPhase, g.Dispatcher)
	}
	g.Player.WaveNumber++
	g.Wave = g.waveSystem.StartWave(g.Player.WaveNumber)
	g.Player.Phase = component.Playing
	return ActionOK
}

// Restart discards the run and starts fresh on the same grid and route.
func (g *Game) Restart() {
	g.resetRun()
}

// TogglePause flips the pause flag. A paused game still accepts input;
// only simulation advancement stops.
func (g *Game) TogglePause() {
	g.Player.Paused = !g.Player.Paused
}

// ToggleSpeed cycles through the configured speed steps.
func (g *Game) ToggleSpeed() {
	g.Player.SpeedIndex = (g.Player.SpeedIndex + 1) % len(g.Settings.SpeedSteps)
}

// Speed returns the current game-speed multiplier.
func (g *Game) Speed() float64 {
	return g.Settings.SpeedSteps[g.Player.SpeedIndex]
}

// GameTime returns accumulated scaled simulation time.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Emit queues a visual effect for the renderer. Implements
// system.EffectEmitter.
func (g *Game) Emit(e component.VisualEffect) {
	g.effects = append(g.effects, e)
}

// DrainEffects hands all pending visual effects to the caller and
// clears the queue. The renderer owns their lifetime from here.
func (g *Game) DrainEffects() []component.VisualEffect {
	out := g.effects
	g.effects = nil
	return out
}

// ActiveEnemies returns read-only snapshots of the live enemies.
func (g *Game) ActiveEnemies() []component.Enemy {
	if g.Wave == nil {
		return nil
	}
	out := make([]component.Enemy, 0, g.Wave.Count)
	for i := 0; i < g.Wave.Count; i++ {
		if g.Wave.Enemies[i].Active {
			out = append(out, g.Wave.Enemies[i])
		}
	}
	return out
}
