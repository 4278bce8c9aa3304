// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/amirh0ss3in/TD0/internal/config"
)

// PauseButton toggles between pause bars and a play triangle.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Play triangle.
		var p vector.Path
		p.MoveTo(b.X-size, b.Y-size*1.2)
		p.LineTo(b.X-size, b.Y+size*1.2)
		p.LineTo(b.X+size, b.Y)
		p.Close()
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		fillVertices(vs, config.PlayingStateColor)
		screen.DrawTriangles(vs, is, whiteImage, nil)
	} else {
		// Two pause bars.
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, config.TransitionStateColor, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, config.TransitionStateColor, true)
	}
}

func (b *PauseButton) IsClicked(mx, my float64) bool {
	dx := mx - float64(b.X)
	dy := my - float64(b.Y)
	return dx*dx+dy*dy <= float64(b.Size*1.5)*float64(b.Size*1.5)
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

// Reset returns the button to the unpaused glyph, for run restarts.
func (b *PauseButton) Reset() {
	b.IsPaused = false
	b.LastClickTime = time.Time{}
}
