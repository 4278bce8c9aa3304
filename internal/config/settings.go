// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the run tunables that can be overridden from a YAML file
// without recompiling. Zero values fall back to the compiled defaults.
type Settings struct {
	BaseHealth      int       `yaml:"base_health"`
	StartingGold    int       `yaml:"starting_gold"`
	FinalWave       int       `yaml:"final_wave"`
	SellRefundRate  float64   `yaml:"sell_refund_rate"`
	TargetingPolicy string    `yaml:"targeting_policy"` // "nearest" or "progress"
	SpeedSteps      []float64 `yaml:"speed_steps"`
	AudioEnabled    bool      `yaml:"audio_enabled"`
}

// DefaultSettings returns the compiled-in tunables.
func DefaultSettings() Settings {
	return Settings{
		BaseHealth:      BaseHealth,
		StartingGold:    StartingGold,
		FinalWave:       FinalWave,
		SellRefundRate:  SellRefundRate,
		TargetingPolicy: "nearest",
		SpeedSteps:      SpeedSteps,
		AudioEnabled:    true,
	}
}

// LoadSettings reads a YAML settings file over the defaults. A missing
// file is not an error; a malformed one is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	if s.BaseHealth <= 0 {
		return fmt.Errorf("config: base_health must be positive, got %d", s.BaseHealth)
	}
	if s.StartingGold < 0 {
		return fmt.Errorf("config: starting_gold must not be negative, got %d", s.StartingGold)
	}
	if s.FinalWave < 1 {
		return fmt.Errorf("config: final_wave must be at least 1, got %d", s.FinalWave)
	}
	if s.SellRefundRate < 0 || s.SellRefundRate > 1 {
		return fmt.Errorf("config: sell_refund_rate must be in [0,1], got %g", s.SellRefundRate)
	}
	switch s.TargetingPolicy {
	case "nearest", "progress":
	default:
		return fmt.Errorf("config: unknown targeting_policy %q", s.TargetingPolicy)
	}
	if len(s.SpeedSteps) == 0 {
		return fmt.Errorf("config: speed_steps must not be empty")
	}
	return nil
}
