package config

import (
	_ "embed"
)

//go:embed defaults/shield.yaml
var defaultShieldYAML []byte

// DefaultShieldConfig returns the hardcoded default configuration.
// It mirrors defaults/shield.yaml and is used when the embedded file
// cannot be decoded.
func DefaultShieldConfig() ShieldConfig {
	return ShieldConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			CellW:  10,
			CellH:  20,
		},
		Ball: BallConfig{
			Size:               20,
			Speed:              3,
			MinSpeedMultiplier: 0.25,
			MaxSpeedMultiplier: 4.0,
		},
		Paddle: PaddleConfig{
			Width:        150,
			Height:       20,
			Speed:        5,
			MinWidth:     50,
			MaxWidth:     300,
			ShrinkOnMiss: 20,
		},
		Hearts: HeartsConfig{
			Initial: 3,
		},
		Scoring: ScoringConfig{
			ComboWindow:      2.0,
			ScalingEnabled:   true,
			ScaleEvery:       5,
			BallSpeedScale:   1.1,
			PaddleSpeedScale: 1.05,
		},
		Milestones: MilestonesConfig{
			Policy:     PolicyHighScore,
			Margin:     5,
			Thresholds: []int{5, 10, 15, 20},
			WidenBy:    15,
		},
		PowerUps: PowerUpsConfig{
			Enabled:     true,
			SpawnChance: 0.01,
			Size:        20,
			Duration:    10,
			WidthFactor: 1.5,
			SpeedFactor: 1.5,
			SlowFactor:  0.75,
		},
		Timing: TimingConfig{
			Countdown:         3,
			AnimationDuration: 1.5,
			HoldWindow:        0.15,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShieldYAML
}
