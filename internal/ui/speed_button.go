// internal/ui/speed_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/amirh0ss3in/TD0/internal/config"
)

// SpeedButton shows the fast-forward glyph in the color of the current
// speed step.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := config.SpeedButtonColors[b.CurrentState%len(config.SpeedButtonColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

func (b *SpeedButton) IsClicked(mx, my float64) bool {
	dx := mx - float64(b.X)
	dy := my - float64(b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Toggle() {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedButtonColors)
	b.LastClickTime = time.Now()
}

// Reset returns the button to the first speed step, for run restarts.
func (b *SpeedButton) Reset() {
	b.CurrentState = 0
	b.LastClickTime = time.Time{}
}
