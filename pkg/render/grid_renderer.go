// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// MapColors holds everything needed to draw the static background.
type MapColors struct {
	Background color.RGBA
	GridLine   color.RGBA
	Wall       color.RGBA
	Path       color.RGBA
	Start      color.RGBA
	Finish     color.RGBA
}

// DefaultMapColors mirrors the config palette.
func DefaultMapColors() MapColors {
	return MapColors{
		Background: config.BackgroundColor,
		GridLine:   config.GridLineColor,
		Wall:       config.WallColor,
		Path:       config.PathColor,
		Start:      config.StartColor,
		Finish:     config.FinishColor,
	}
}

// GridRenderer draws the whole play field. The static parts (grid
// lines, walls, route) are rendered once into an offscreen image and
// blitted every frame.
type GridRenderer struct {
	background *ebiten.Image
	effects    *EffectPool
	face       font.Face
	colors     MapColors
}

// NewGridRenderer pre-renders the background for a grid and route.
func NewGridRenderer(grid *gridmap.Grid, path []gridmap.Cell, colors MapColors) *GridRenderer {
	r := &GridRenderer{
		effects: NewEffectPool(),
		face:    basicfont.Face7x13,
		colors:  colors,
	}
	r.renderBackground(grid, path)
	return r
}

func (r *GridRenderer) renderBackground(grid *gridmap.Grid, path []gridmap.Cell) {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(r.colors.Background)

	cs := float32(config.CellSize)
	for i := 0; i <= gridmap.Size; i++ {
		p := float32(i) * cs
		vector.StrokeLine(img, p, 0, p, config.ScreenHeight, 2, r.colors.GridLine, true)
		vector.StrokeLine(img, 0, p, config.ScreenWidth, p, 2, r.colors.GridLine, true)
	}

	for _, c := range path {
		vector.DrawFilledRect(img, float32(c.X)*cs+2, float32(c.Y)*cs+2, cs-4, cs-4, r.colors.Path, true)
	}

	const buff = 10
	for x := 0; x < gridmap.Size; x++ {
		for y := 0; y < gridmap.Size; y++ {
			if grid.Walls[x][y] {
				vector.DrawFilledRect(img, float32(x)*cs+buff, float32(y)*cs+buff, cs-2*buff, cs-2*buff, r.colors.Wall, true)
			}
		}
	}

	drawCellMarker(img, grid.Start, r.colors.Start)
	drawCellMarker(img, grid.Finish, r.colors.Finish)
	r.background = img
}

func drawCellMarker(img *ebiten.Image, c gridmap.Cell, clr color.RGBA) {
	cs := float32(config.CellSize)
	vector.StrokeRect(img, float32(c.X)*cs+4, float32(c.Y)*cs+4, cs-8, cs-8, 3, clr, true)
}

// toScreen converts world cell units to pixels.
func toScreen(x, y float64) (float32, float32) {
	return float32(x * config.CellSize), float32(y * config.CellSize)
}

// Draw renders one frame of game state onto the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, enemies []component.Enemy,
	towers *component.TowerArena, selected *component.Tower, dt float64) {

	screen.DrawImage(r.background, nil)
	r.drawTowers(screen, towers, selected)
	r.drawEnemies(screen, enemies)
	r.effects.Draw(screen, dt)
}

func (r *GridRenderer) drawEnemies(screen *ebiten.Image, enemies []component.Enemy) {
	for i := range enemies {
		e := &enemies[i]
		def := defs.EnemyLibrary[e.Type]
		sx, sy := toScreen(e.X, e.Y)
		radius := float32(def.Radius * config.CellSize)

		clr := def.Visuals.Color
		if e.Slowed() {
			clr = config.SlowTintColor
		}
		vector.DrawFilledCircle(screen, sx, sy, radius, clr, true)

		// Health bar above the body.
		barW := radius * 2
		barY := sy - radius - 6
		vector.DrawFilledRect(screen, sx-radius, barY, barW, 3, config.HealthBarBack, true)
		vector.DrawFilledRect(screen, sx-radius, barY, barW*float32(e.HealthFraction()), 3, config.HealthBarFront, true)
	}
}

func (r *GridRenderer) drawTowers(screen *ebiten.Image, towers *component.TowerArena, selected *component.Tower) {
	towers.Each(func(t *component.Tower) {
		def := defs.TowerLibrary[t.Kind]
		cx, cy := gridmap.CellCenter(t.Cell)
		sx, sy := toScreen(cx, cy)
		size := float32(config.CellSize) * 0.3

		vector.DrawFilledRect(screen, sx-size, sy-size, size*2, size*2, def.Visuals.Color, true)

		// Barrel shows the cosmetic rotation.
		bx := sx + float32(math.Cos(t.Rotation))*size*1.4
		by := sy + float32(math.Sin(t.Rotation))*size*1.4
		vector.StrokeLine(screen, sx, sy, bx, by, 3, color.White, true)

		// Level pips.
		for l := 0; l <= t.Level; l++ {
			vector.DrawFilledCircle(screen, sx-size+4+float32(l)*6, sy+size-4, 2, color.White, true)
		}

		if selected != nil && t.Cell == selected.Cell {
			vector.StrokeCircle(screen, sx, sy, float32(t.Stats().Range*config.CellSize), 1, config.RangeRingColor, true)
		}
	})
}

// QueueEffects hands freshly emitted visual events to the renderer's
// transient pool.
func (r *GridRenderer) QueueEffects(effects []component.VisualEffect) {
	for _, e := range effects {
		r.effects.Add(e)
	}
}

// DrawHUD prints the run numbers along the top edge.
func (r *GridRenderer) DrawHUD(screen *ebiten.Image, player *component.PlayerState, speed float64) {
	msg := fmt.Sprintf("HP %d   Gold %d   Wave %d   x%g", player.Health, player.Gold, player.WaveNumber, speed)
	if player.Paused {
		msg += "   PAUSED"
	}
	switch player.Phase {
	case component.WaveTransition:
		msg += "   click the lamp to start the wave"
	case component.GameOver:
		msg += "   GAME OVER - R to restart"
	case component.Victory:
		msg += "   VICTORY - R to restart"
	}
	text.Draw(screen, msg, r.face, 10, config.HUDTextY, config.TextColor)
}
