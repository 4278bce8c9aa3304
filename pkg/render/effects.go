// pkg/render/effects.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
)

const maxEffects = 256

// liveEffect is a queued visual event plus its remaining life. The
// simulation emits descriptors and forgets them; decay is owned here.
type liveEffect struct {
	component.VisualEffect
	Lifetime  float64
	Remaining float64
}

// EffectPool is a fixed-capacity pool of transient visuals. Expired
// entries are removed by swapping with the last slot so the live
// entries stay packed and the per-frame scan stays cheap.
type EffectPool struct {
	effects [maxEffects]liveEffect
	count   int
}

func NewEffectPool() *EffectPool {
	return &EffectPool{}
}

// Add queues an effect; silently drops when full.
func (p *EffectPool) Add(e component.VisualEffect) {
	if p.count >= maxEffects {
		return
	}
	lifetime := 0.12
	if e.Shape == component.EffectCircle {
		lifetime = 0.4
	}
	p.effects[p.count] = liveEffect{VisualEffect: e, Lifetime: lifetime, Remaining: lifetime}
	p.count++
}

// Draw advances and renders all live effects.
func (p *EffectPool) Draw(screen *ebiten.Image, dt float64) {
	for i := 0; i < p.count; {
		e := &p.effects[i]
		e.Remaining -= dt
		if e.Remaining <= 0 {
			p.count--
			p.effects[i] = p.effects[p.count]
			continue
		}
		fade := e.Remaining / e.Lifetime
		clr := e.Color
		clr.A = uint8(float64(clr.A) * fade)

		switch e.Shape {
		case component.EffectLine:
			x1, y1 := toScreen(e.X1, e.Y1)
			x2, y2 := toScreen(e.X2, e.Y2)
			vector.StrokeLine(screen, x1, y1, x2, y2, 2, clr, true)
		case component.EffectCircle:
			x, y := toScreen(e.X1, e.Y1)
			grown := e.Radius * config.CellSize * (1 - fade)
			vector.StrokeCircle(screen, x, y, float32(grown), 2, clr, true)
		}
		i++
	}
}

// Count reports the number of live effects.
func (p *EffectPool) Count() int {
	return p.count
}
