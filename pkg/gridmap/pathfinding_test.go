// pkg/gridmap/pathfinding_test.go
package gridmap

import "testing"

// gridFromRows builds a grid from the same characters the map files use.
func gridFromRows(t *testing.T, rows []string) *Grid {
	t.Helper()
	g := &Grid{Start: Cell{X: -1, Y: -1}, Finish: Cell{X: -1, Y: -1}}
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '1':
				g.Walls[x][y] = true
			case 's':
				g.Start = Cell{X: x, Y: y}
			case 'f':
				g.Finish = Cell{X: x, Y: y}
			}
		}
	}
	return g
}

func adjacent(a, b Cell) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy == 1
}

func TestFindPathStraightCorridor(t *testing.T) {
	// Single walkable corridor along the top row, all else walls.
	rows := []string{
		"s00000000f",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
		"1111111111",
	}
	g := gridFromRows(t, rows)
	path, ok := FindPath(g, g.Start, g.Finish)
	if !ok {
		t.Fatal("expected a path through the corridor")
	}
	if len(path) != 10 {
		t.Fatalf("corridor path length = %d, want 10", len(path))
	}
	if path[0] != g.Start {
		t.Errorf("path starts at %v, want %v", path[0], g.Start)
	}
	if path[len(path)-1] != g.Finish {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], g.Finish)
	}
}

func TestFindPathCellsAreAdjacent(t *testing.T) {
	g := gridFromRows(t, []string{
		"s000000000",
		"1111111110",
		"0000000000",
		"0111111111",
		"000000000f",
	})
	path, ok := FindPath(g, g.Start, g.Finish)
	if !ok {
		t.Fatal("expected a path")
	}
	for i := 1; i < len(path); i++ {
		if !adjacent(path[i-1], path[i]) {
			t.Fatalf("path[%d]=%v and path[%d]=%v are not 4-adjacent", i-1, path[i-1], i, path[i])
		}
	}
	for i := 1; i < len(path); i++ {
		if g.IsWall(path[i]) {
			t.Fatalf("path crosses wall at %v", path[i])
		}
	}
}

func TestFindPathShortestOnOpenGrid(t *testing.T) {
	// No walls: the shortest route is the Manhattan distance.
	g := &Grid{Start: Cell{X: 0, Y: 0}, Finish: Cell{X: 9, Y: 9}}
	path, ok := FindPath(g, g.Start, g.Finish)
	if !ok {
		t.Fatal("expected a path on an empty grid")
	}
	want := 9 + 9 + 1
	if len(path) != want {
		t.Errorf("open grid path length = %d, want %d", len(path), want)
	}
}

func TestFindPathFailures(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "start on wall",
			rows: []string{
				"0000000000",
				"0f00000000",
			},
		},
		{
			name: "no route",
			rows: []string{
				"s111111111",
				"1111111111",
				"11111111f1",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows)
			if tc.name == "start on wall" {
				g.Start = Cell{X: 5, Y: 5}
				g.Walls[5][5] = true
			}
			path, ok := FindPath(g, g.Start, g.Finish)
			if ok {
				t.Errorf("expected failure, got path of length %d", len(path))
			}
			if path != nil {
				t.Errorf("expected nil path on failure, got %v", path)
			}
		})
	}
}

func TestFindPathDeterministic(t *testing.T) {
	g := &Grid{Start: Cell{X: 0, Y: 0}, Finish: Cell{X: 9, Y: 9}}
	first, ok := FindPath(g, g.Start, g.Finish)
	if !ok {
		t.Fatal("expected a path")
	}
	for i := 0; i < 5; i++ {
		again, _ := FindPath(g, g.Start, g.Finish)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: cell %d differs: %v != %v", i, j, again[j], first[j])
			}
		}
	}
}
