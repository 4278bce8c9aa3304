// cmd/mapviewer/main.go
//
// Terminal viewer for map files: draws the grid, the start/finish
// markers and the route the game will use, so maps can be checked
// without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

func main() {
	mapPath := flag.String("map", "assets/map.txt", "map file to inspect")
	flag.Parse()

	grid, err := gridmap.LoadMap(*mapPath)
	if err != nil {
		log.Fatal(err)
	}
	path, ok := gridmap.FindPath(grid, grid.Start, grid.Finish)
	if !ok {
		log.Fatalf("map %s has no walkable route between start and finish", *mapPath)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	draw(screen, grid, path, *mapPath)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, grid, path, *mapPath)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
		}
	}
}

func draw(screen tcell.Screen, grid *gridmap.Grid, path []gridmap.Cell, name string) {
	screen.Clear()

	onPath := make(map[gridmap.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	startStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	finishStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	// Cells are drawn two columns wide so the grid looks square.
	for y := 0; y < gridmap.Size; y++ {
		for x := 0; x < gridmap.Size; x++ {
			cell := gridmap.Cell{X: x, Y: y}
			ch, style := ' ', tcell.StyleDefault
			switch {
			case cell == grid.Start:
				ch, style = 'S', startStyle
			case cell == grid.Finish:
				ch, style = 'F', finishStyle
			case grid.Walls[x][y]:
				ch, style = '#', wallStyle
			case onPath[cell]:
				ch, style = '*', pathStyle
			default:
				ch = '.'
			}
			screen.SetContent(x*2, y, ch, nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("%s  route length %d  (q to quit)", name, len(path))
	for i, r := range status {
		screen.SetContent(i, gridmap.Size+1, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
