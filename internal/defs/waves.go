// internal/defs/waves.go
package defs

// TypeCount is one entry of a wave composition: how many of one enemy
// type to spawn, in order.
type TypeCount struct {
	Type  EnemyType
	Count int
}

// WavePatterns holds the hand-authored early waves that control pacing.
// Waves beyond the table are generated by the scaling rules in
// system.ComposeWave.
var WavePatterns = map[int][]TypeCount{
	1: {{Type: EnemyNormal, Count: 10}},
	2: {{Type: EnemyNormal, Count: 10}, {Type: EnemyScout, Count: 5}},
	3: {{Type: EnemyNormal, Count: 12}, {Type: EnemyScout, Count: 6}},
}

// Scaling rules for generated waves.
const (
	WaveBaseNormalCount = 8
	WaveNormalPerWave   = 2
	WaveScoutFromWave   = 2
	WaveTankFromWave    = 5
)
