// pkg/gridmap/pathfinding.go
package gridmap

// Neighbor visit order is fixed (up, down, left, right) so the route is
// deterministic for a given map.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FindPath runs an unweighted breadth-first search from start to end and
// returns the shortest route, start and end inclusive. It returns false
// if either endpoint is a wall or no walkable route connects them.
// The route is computed once at startup and never again for the run.
func FindPath(g *Grid, start, end Cell) ([]Cell, bool) {
	if g.IsWall(start) || g.IsWall(end) {
		return nil, false
	}

	var visited [Size][Size]bool
	var parent [Size][Size]Cell
	queue := make([]Cell, 0, Size*Size)

	queue = append(queue, start)
	visited[start.X][start.Y] = true
	parent[start.X][start.Y] = Cell{X: -1, Y: -1}

	found := false
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			found = true
			break
		}
		for _, off := range neighborOffsets {
			next := current.Add(off[0], off[1])
			if !next.InBounds() || visited[next.X][next.Y] || g.Walls[next.X][next.Y] {
				continue
			}
			visited[next.X][next.Y] = true
			parent[next.X][next.Y] = current
			queue = append(queue, next)
		}
	}
	if !found {
		return nil, false
	}

	path := []Cell{}
	for c := end; c.X != -1; c = parent[c.X][c.Y] {
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
