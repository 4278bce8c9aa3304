// pkg/gridmap/loader.go
package gridmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Map files are Size lines of Size characters:
// '1' wall, '0' floor, 's' spawn marker, 'f' finish marker.
// Exactly one 's' and one 'f' must appear, both on floor cells.

var (
	ErrBadDimensions   = errors.New("gridmap: map must be 10 lines of 10 cells")
	ErrBadCell         = errors.New("gridmap: unknown cell character")
	ErrDuplicateStart  = errors.New("gridmap: duplicate start marker")
	ErrDuplicateFinish = errors.New("gridmap: duplicate finish marker")
	ErrMissingStart    = errors.New("gridmap: missing start marker")
	ErrMissingFinish   = errors.New("gridmap: missing finish marker")
)

// ParseMap reads a map description and returns the populated grid.
func ParseMap(r io.Reader) (*Grid, error) {
	g := &Grid{Start: Cell{X: -1, Y: -1}, Finish: Cell{X: -1, Y: -1}}

	scanner := bufio.NewScanner(r)
	for y := 0; y < Size; y++ {
		if !scanner.Scan() {
			return nil, ErrBadDimensions
		}
		line := scanner.Text()
		if len(line) != Size {
			return nil, ErrBadDimensions
		}
		for x := 0; x < Size; x++ {
			switch line[x] {
			case '1':
				g.Walls[x][y] = true
			case '0':
			case 's':
				if g.Start.X != -1 {
					return nil, ErrDuplicateStart
				}
				g.Start = Cell{X: x, Y: y}
			case 'f':
				if g.Finish.X != -1 {
					return nil, ErrDuplicateFinish
				}
				g.Finish = Cell{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, line[x], x, y)
			}
		}
	}
	// Trailing blank lines are fine; any further cell rows are not.
	for scanner.Scan() {
		if scanner.Text() != "" {
			return nil, ErrBadDimensions
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: read map: %w", err)
	}
	if g.Start.X == -1 {
		return nil, ErrMissingStart
	}
	if g.Finish.X == -1 {
		return nil, ErrMissingFinish
	}
	return g, nil
}

// LoadMap parses a map from a file on disk.
func LoadMap(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open map file: %w", err)
	}
	defer f.Close()
	return ParseMap(f)
}
