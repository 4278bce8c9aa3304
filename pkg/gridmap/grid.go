// pkg/gridmap/grid.go
package gridmap

// Size is the number of cells along each edge of the square map.
const Size = 10

// Cell is a single grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by dx, dy.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the cell lies on the map.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Grid is the static walkability map. Walls never change after loading;
// tower occupancy is tracked separately and does not affect routing.
type Grid struct {
	Walls  [Size][Size]bool
	Start  Cell
	Finish Cell
}

// IsWall reports whether the cell is a wall. Out-of-bounds cells count
// as walls so callers can test neighbors without their own bounds check.
func (g *Grid) IsWall(c Cell) bool {
	if !c.InBounds() {
		return true
	}
	return g.Walls[c.X][c.Y]
}

// CellCenter returns the world-space center of a cell. World units are
// cell widths, so the renderer scales them without the simulation caring
// about pixels.
func CellCenter(c Cell) (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

// Lerp linearly interpolates between the centers of two cells.
func Lerp(from, to Cell, t float64) (float64, float64) {
	fx, fy := CellCenter(from)
	tx, ty := CellCenter(to)
	return fx + (tx-fx)*t, fy + (ty-fy)*t
}
