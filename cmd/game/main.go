// cmd/game/main.go
package main

import (
	"flag"
	"image/color"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/amirh0ss3in/TD0/internal/app"
	"github.com/amirh0ss3in/TD0/internal/audio"
	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/config"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/ui"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
	"github.com/amirh0ss3in/TD0/pkg/render"
)

// AppGame adapts the simulation to ebiten's frame loop.
type AppGame struct {
	game     *app.Game
	renderer *render.GridRenderer

	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton

	buildKind defs.TowerKind
	watcher   *defs.Watcher

	lastUpdateTime time.Time
	lastDrawTime   time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.drainDefsReloads()
	a.handleInput()
	a.game.Update(deltaTime)
	a.renderer.QueueEffects(a.game.DrainEffects())
	return nil
}

func (a *AppGame) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		a.buildKind = defs.TowerGun
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		a.buildKind = defs.TowerCannon
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		a.buildKind = defs.TowerFrost
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		a.game.UpgradeSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		a.game.SellSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.toggleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.restartRun()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		a.handleClick(float64(mx), float64(my))
	}
}

func (a *AppGame) handleClick(mx, my float64) {
	if a.indicator.IsClicked(mx, my) {
		a.indicator.HandleClick()
		a.startWave()
		return
	}
	if a.speedButton.IsClicked(mx, my) {
		a.toggleSpeed()
		return
	}
	if a.pauseButton.IsClicked(mx, my) {
		a.togglePause()
		return
	}

	cell := gridmap.Cell{X: int(mx) / config.CellSize, Y: int(my) / config.CellSize}
	if !cell.InBounds() {
		return
	}
	// A click selects an existing tower, otherwise tries to build.
	if a.game.Towers.At(cell) != nil {
		a.game.SelectTower(cell)
		return
	}
	a.game.PlaceTower(a.buildKind, cell)
}

func (a *AppGame) startWave() {
	a.game.StartNextWave()
}

// restartRun resets the simulation and the widgets together: Restart
// clears the pause flag and speed index, so the buttons must follow.
func (a *AppGame) restartRun() {
	a.game.Restart()
	a.pauseButton.Reset()
	a.speedButton.Reset()
}

func (a *AppGame) togglePause() {
	a.game.TogglePause()
	a.pauseButton.Toggle()
}

func (a *AppGame) toggleSpeed() {
	a.game.ToggleSpeed()
	a.speedButton.Toggle()
}

func (a *AppGame) drainDefsReloads() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			if err := defs.Reload(path); err != nil {
				log.Printf("defs reload failed: %v", err)
			}
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("defs watcher: %v", err)
		default:
			return
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	now := time.Now()
	dt := now.Sub(a.lastDrawTime).Seconds()
	a.lastDrawTime = now

	selected, _ := a.game.SelectedTower()
	a.renderer.Draw(screen, a.game.ActiveEnemies(), &a.game.Towers, selected, dt)
	a.renderer.DrawHUD(screen, &a.game.Player, a.game.Speed())

	a.indicator.Draw(screen, phaseColor(a.game.Player.Phase))
	a.speedButton.Draw(screen)
	a.pauseButton.Draw(screen)
}

func phaseColor(p component.GamePhase) color.RGBA {
	switch p {
	case component.Playing:
		return config.PlayingStateColor
	case component.GameOver:
		return config.GameOverStateColor
	case component.Victory:
		return config.VictoryStateColor
	}
	return config.TransitionStateColor
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	mapPath := flag.String("map", "assets/map.txt", "map file")
	settingsPath := flag.String("settings", "assets/settings.yaml", "settings file")
	defsDir := flag.String("defs", "", "directory with JSON definition overrides, watched for changes")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGameFromMap(*mapPath, settings)
	if err != nil {
		log.Fatal(err)
	}

	if settings.AudioEnabled && !*mute {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			player.Subscribe(game.Dispatcher)
		}
	}

	appGame := &AppGame{
		game:           game,
		renderer:       render.NewGridRenderer(game.Grid, game.Path, render.DefaultMapColors()),
		indicator:      ui.NewStateIndicator(config.ScreenWidth-config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius),
		speedButton:    ui.NewSpeedButton(config.ScreenWidth-config.IndicatorOffsetX-60, config.SpeedButtonY, config.SpeedButtonSize),
		pauseButton:    ui.NewPauseButton(config.ScreenWidth-config.IndicatorOffsetX-110, config.IndicatorOffsetX, config.IndicatorRadius),
		lastUpdateTime: time.Now(),
		lastDrawTime:   time.Now(),
	}

	if *defsDir != "" {
		watcher, err := defs.NewWatcher(*defsDir)
		if err != nil {
			log.Printf("defs watcher disabled: %v", err)
		} else {
			defer watcher.Close()
			appGame.watcher = watcher
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("TD0")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
