// internal/audio/cues.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/amirh0ss3in/TD0/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one of the short synthesized sounds the game plays.
type Cue int

const (
	CueFire Cue = iota
	CueExplosion
	CuePlace
	CueUpgrade
	CueSell
	CueError
	CueHitPlayer
)

// cueParams shapes each cue's tone: start/end frequency and length.
var cueParams = map[Cue]struct {
	fromHz, toHz float64
	ms           int
}{
	CueFire:      {880, 440, 60},
	CueExplosion: {220, 40, 250},
	CuePlace:     {440, 660, 90},
	CueUpgrade:   {440, 880, 120},
	CueSell:      {660, 330, 120},
	CueError:     {120, 120, 150},
	CueHitPlayer: {300, 80, 300},
}

// Player synthesizes cue tones through the speaker. A nil *Player is a
// valid no-op sink, so audio can be disabled without branching at every
// call site.
type Player struct {
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer opens the speaker. Returns an error if the audio device
// cannot be initialized; callers may keep going with a nil player.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play queues a cue. Safe on a nil or uninitialized player.
func (p *Player) Play(cue Cue) {
	if p == nil || !p.initialized {
		return
	}
	params, ok := cueParams[cue]
	if !ok {
		return
	}
	n := sampleRate.N(time.Duration(params.ms) * time.Millisecond)
	tone := newSweepGenerator(sampleRate, params.fromHz, params.toHz, n)
	speaker.Lock()
	p.mixer.Add(beep.Take(n, tone))
	speaker.Unlock()
}

// OnEvent maps game events to cues. Implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		p.Play(CueFire)
	case event.EnemyKilled:
		p.Play(CueExplosion)
	case event.TowerPlaced:
		p.Play(CuePlace)
	case event.TowerUpgraded:
		p.Play(CueUpgrade)
	case event.TowerSold:
		p.Play(CueSell)
	case event.ActionDenied:
		p.Play(CueError)
	case event.EnemyLeaked:
		p.Play(CueHitPlayer)
	}
}

// Subscribe attaches the player to every cue-bearing event type.
func (p *Player) Subscribe(d *event.Dispatcher) {
	if p == nil {
		return
	}
	for _, t := range []event.EventType{
		event.TowerFired, event.EnemyKilled, event.TowerPlaced,
		event.TowerUpgraded, event.TowerSold, event.ActionDenied,
		event.EnemyLeaked,
	} {
		d.Subscribe(t, p)
	}
}

// sweepGenerator produces a sine sweep with a linear fade-out.
type sweepGenerator struct {
	sr           beep.SampleRate
	fromHz, toHz float64
	total        int
	pos          int
	phase        float64
}

func newSweepGenerator(sr beep.SampleRate, fromHz, toHz float64, total int) *sweepGenerator {
	return &sweepGenerator{sr: sr, fromHz: fromHz, toHz: toHz, total: total}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.total)
		freq := g.fromHz + (g.toHz-g.fromHz)*t
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		v := math.Sin(g.phase) * 0.25 * (1 - t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }
