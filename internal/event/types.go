// internal/event/types.go
package event

const (
	TowerFired    EventType = "TowerFired"  // any tower shot or pulse
	EnemyKilled   EventType = "EnemyKilled" // health reached zero, Data: enemy slot index
	EnemyLeaked   EventType = "EnemyLeaked" // enemy reached the finish cell
	WaveStarted   EventType = "WaveStarted" // Data: wave number
	WaveEnded     EventType = "WaveEnded"   // Data: wave number
	TowerPlaced   EventType = "TowerPlaced"
	TowerUpgraded EventType = "TowerUpgraded"
	TowerSold     EventType = "TowerSold"
	ActionDenied  EventType = "ActionDenied" // a player intent was rejected
	GameOver      EventType = "GameOver"
	Victory       EventType = "Victory"
)
