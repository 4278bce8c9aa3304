// internal/system/movement_test.go
package system

import (
	"math"
	"testing"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

const floatTol = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

// spawnedWave returns a wave with a single live enemy of the given type
// placed at the head of the route.
func spawnedWave(path []gridmap.Cell, typ defs.EnemyType) *component.Wave {
	w := &component.Wave{Number: 1, HealthMult: 1.0, Count: 1, Spawned: 1, FullySpawned: true}
	def := defs.EnemyLibrary[typ]
	x, y := gridmap.CellCenter(path[0])
	w.Enemies[0] = component.Enemy{
		Active:    true,
		Type:      typ,
		X:         x,
		Y:         y,
		Health:    def.Health,
		MaxHealth: def.Health,
		SpeedMult: 1.0,
	}
	return w
}

func TestMovementInterpolatesWithinSegment(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())
	w := spawnedWave(path, defs.EnemyNormal) // speed 4.0, segment 0.25s

	move.Update(0.125, w)
	e := &w.Enemies[0]
	if e.PathIndex != 0 {
		t.Fatalf("path index = %d, want 0", e.PathIndex)
	}
	if !closeTo(e.X, 1.0) || !closeTo(e.Y, 0.5) {
		t.Errorf("midpoint = (%v,%v), want (1.0,0.5)", e.X, e.Y)
	}
	if !closeTo(e.Progress, 0.5) {
		t.Errorf("progress = %v, want 0.5", e.Progress)
	}
}

func TestMovementCarriesRemainderAcrossCells(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())
	w := spawnedWave(path, defs.EnemyNormal)

	// 0.30s at 4.0 cells/s covers 1.2 segments: one boundary crossed,
	// a fifth of the next segment already traversed.
	move.Update(0.30, w)
	e := &w.Enemies[0]
	if e.PathIndex != 1 {
		t.Fatalf("path index = %d, want 1", e.PathIndex)
	}
	if !closeTo(e.SegmentFrac, 0.2) {
		t.Errorf("segment fraction = %v, want 0.2", e.SegmentFrac)
	}
	if !closeTo(e.Progress, 1.2) {
		t.Errorf("progress = %v, want 1.2", e.Progress)
	}
}

func TestMovementFastEnemySkipsCells(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())
	w := spawnedWave(path, defs.EnemyScout) // speed 8.0, segment 0.125s

	// One large frame advances several segments without losing time.
	move.Update(0.5, w)
	e := &w.Enemies[0]
	if e.PathIndex != 4 {
		t.Errorf("path index = %d, want 4", e.PathIndex)
	}
	if !closeTo(e.SegmentFrac, 0) {
		t.Errorf("segment fraction = %v, want 0", e.SegmentFrac)
	}
}

func TestMovementProgressMonotonic(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())
	w := spawnedWave(path, defs.EnemyNormal)

	// Flip the speed multiplier around mid-flight, the way frost pulses
	// and their expiry do; progress must still never regress.
	prev := -1.0
	for i := 0; i < 80 && w.Enemies[0].Active; i++ {
		switch i {
		case 10:
			w.Enemies[0].SpeedMult = 0.6
		case 20:
			w.Enemies[0].SpeedMult = 1.0
		case 30:
			w.Enemies[0].SpeedMult = 0.4
		}
		move.Update(0.04, w)
		if !w.Enemies[0].Active {
			break
		}
		if w.Enemies[0].Progress < prev {
			t.Fatalf("progress went backwards: %v after %v", w.Enemies[0].Progress, prev)
		}
		prev = w.Enemies[0].Progress
	}
}

func TestMovementSlowMidSegmentKeepsGround(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())
	w := spawnedWave(path, defs.EnemyNormal) // speed 4.0
	e := &w.Enemies[0]

	// 0.2s at full speed covers 0.8 of the first segment.
	move.Update(0.2, w)
	if !closeTo(e.Progress, 0.8) {
		t.Fatalf("progress = %v, want 0.8", e.Progress)
	}
	xBefore := e.X

	// A slow landing now only scales the advance from here on; the
	// covered ground stays covered.
	e.SpeedMult = 0.6
	move.Update(0.016, w)
	want := 0.8 + 0.016*4.0*0.6
	if !closeTo(e.Progress, want) {
		t.Errorf("progress = %v, want %v", e.Progress, want)
	}
	if e.X < xBefore {
		t.Errorf("position jumped backwards: %v -> %v", xBefore, e.X)
	}

	// Expiry back to full speed must not teleport the enemy forward
	// past what it actually walked.
	e.SpeedMult = 1.0
	before := e.Progress
	move.Update(0.016, w)
	if got := e.Progress - before; !closeTo(got, 0.016*4.0) {
		t.Errorf("advance after expiry = %v, want %v", got, 0.016*4.0)
	}
}

func TestMovementLeakChargesPlayer(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: 3, Phase: component.Playing}
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	d.Subscribe(event.EnemyLeaked, rec)
	move := NewMovementSystem(path, player, d)

	w := spawnedWave(path, defs.EnemyNormal)
	// Route is 10 cells, 9 segments at 0.25s each.
	for i := 0; i < 60; i++ {
		move.Update(0.05, w)
	}

	if w.Enemies[0].Active {
		t.Fatal("enemy still active after reaching the finish")
	}
	if player.Health != 3-config.LeakDamage {
		t.Errorf("player health = %d, want %d", player.Health, 3-config.LeakDamage)
	}
	if len(rec.events) != 1 {
		t.Errorf("leak events = %d, want 1", len(rec.events))
	}
	if player.Phase != component.Playing {
		t.Errorf("phase = %v, want Playing while health remains", player.Phase)
	}
}

func TestMovementLastLeakEndsRun(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: 1, Phase: component.Playing}
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	d.Subscribe(event.GameOver, rec)
	move := NewMovementSystem(path, player, d)

	w := spawnedWave(path, defs.EnemyScout)
	for i := 0; i < 60; i++ {
		move.Update(0.05, w)
	}

	if player.Health != 0 {
		t.Errorf("player health = %d, want 0", player.Health)
	}
	if player.Phase != component.GameOver {
		t.Errorf("phase = %v, want GameOver", player.Phase)
	}
	if len(rec.events) != 1 {
		t.Errorf("game over events = %d, want exactly 1", len(rec.events))
	}
}

func TestMovementIgnoresInactiveSlots(t *testing.T) {
	path := testPath()
	player := &component.PlayerState{Health: config.BaseHealth, Phase: component.Playing}
	move := NewMovementSystem(path, player, event.NewDispatcher())

	w := spawnedWave(path, defs.EnemyNormal)
	w.Enemies[0].Active = false
	before := w.Enemies[0]

	move.Update(1.0, w)
	if w.Enemies[0] != before {
		t.Error("inactive slot was mutated")
	}
	if player.Health != config.BaseHealth {
		t.Error("inactive slot charged the player")
	}
}
