// internal/component/effect.go
package component

import "image/color"

// EffectShape selects how the renderer animates a visual event.
type EffectShape int

const (
	EffectLine   EffectShape = iota // shot trace from tower to target
	EffectCircle                    // expanding ring at an impact point
)

// VisualEffect describes one transient visual event emitted by the
// combat resolver. The simulation only emits these; the renderer owns
// their storage and decay.
type VisualEffect struct {
	Shape  EffectShape
	X1, Y1 float64 // origin (cell units)
	X2, Y2 float64 // destination, line only
	Radius float64 // final radius, circle only
	Color  color.RGBA
}
