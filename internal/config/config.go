// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 800
	CellSize     = ScreenWidth / 10

	MaxDeltaTime = 0.06

	SpawnInterval     = 0.4 // seconds between enemies leaving the spawn cell
	MaxEnemiesPerWave = 50
	LeakDamage        = 1
	SlowGracePeriod   = 0.1 // keeps the slow from flickering off between pulses

	BaseHealth   = 10
	StartingGold = 100
	FinalWave    = 15

	SellRefundRate = 0.7

	HealthMultStep = 0.15 // per wave beyond the first

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 14.0
	HUDTextY         = 24
)

var (
	BackgroundColor = color.RGBA{8, 8, 14, 255}
	GridLineColor   = color.RGBA{0, 255, 255, 200}
	WallColor       = color.RGBA{0, 80, 80, 255}
	PathColor       = color.RGBA{0, 90, 120, 160}
	StartColor      = color.RGBA{0, 255, 0, 255}
	FinishColor     = color.RGBA{255, 0, 100, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	HealthBarBack   = color.RGBA{60, 10, 10, 255}
	HealthBarFront  = color.RGBA{60, 220, 60, 255}
	SlowTintColor   = color.RGBA{80, 160, 255, 255}
	RangeRingColor  = color.RGBA{240, 240, 240, 90}

	TransitionStateColor = color.RGBA{70, 130, 180, 220}
	PlayingStateColor    = color.RGBA{220, 60, 60, 220}
	GameOverStateColor   = color.RGBA{120, 20, 20, 255}
	VictoryStateColor    = color.RGBA{255, 215, 0, 255}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 60, 60, 220},  // x2
	}
	SpeedSteps = []float64{1.0, 2.0}
)
