// internal/config/settings_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	d := DefaultSettings()
	if s.BaseHealth != d.BaseHealth || s.StartingGold != d.StartingGold ||
		s.FinalWave != d.FinalWave || s.TargetingPolicy != d.TargetingPolicy {
		t.Errorf("settings = %+v, want defaults", s)
	}
	if len(s.SpeedSteps) != len(d.SpeedSteps) {
		t.Errorf("speed steps = %v, want %v", s.SpeedSteps, d.SpeedSteps)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := writeSettings(t, `
base_health: 25
starting_gold: 300
targeting_policy: progress
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.BaseHealth != 25 {
		t.Errorf("base health = %d, want 25", s.BaseHealth)
	}
	if s.StartingGold != 300 {
		t.Errorf("starting gold = %d, want 300", s.StartingGold)
	}
	if s.TargetingPolicy != "progress" {
		t.Errorf("targeting policy = %q, want progress", s.TargetingPolicy)
	}
	// Untouched keys keep their defaults.
	if s.FinalWave != FinalWave {
		t.Errorf("final wave = %d, want default %d", s.FinalWave, FinalWave)
	}
	if s.SellRefundRate != SellRefundRate {
		t.Errorf("sell refund rate = %v, want default %v", s.SellRefundRate, SellRefundRate)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettings(t, "base_health: [not an int")
	if _, err := LoadSettings(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"zero health", func(s *Settings) { s.BaseHealth = 0 }, false},
		{"negative gold", func(s *Settings) { s.StartingGold = -1 }, false},
		{"zero final wave", func(s *Settings) { s.FinalWave = 0 }, false},
		{"refund above one", func(s *Settings) { s.SellRefundRate = 1.5 }, false},
		{"refund at bounds", func(s *Settings) { s.SellRefundRate = 1.0 }, true},
		{"bad policy", func(s *Settings) { s.TargetingPolicy = "strongest" }, false},
		{"empty speed steps", func(s *Settings) { s.SpeedSteps = nil }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
