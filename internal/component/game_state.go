// internal/component/game_state.go
package component

// GamePhase is the run's progress state.
type GamePhase int

const (
	WaveTransition GamePhase = iota
	Playing
	GameOver
	Victory
)

func (p GamePhase) String() string {
	switch p {
	case WaveTransition:
		return "WaveTransition"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	}
	return "Unknown"
}

// PlayerState is the run-wide mutable player data. Health and Gold are
// clamped at zero everywhere they are decremented.
type PlayerState struct {
	Health     int
	Gold       int
	WaveNumber int
	Phase      GamePhase
	Paused     bool
	SpeedIndex int // index into the configured speed steps
}
