// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for Bounce Shield.
package config

// ShieldConfig contains all configuration for a Bounce Shield session.
// Lengths are in world units (virtual pixels), durations in seconds.
type ShieldConfig struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Hearts     HeartsConfig     `yaml:"hearts" toml:"hearts"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Milestones MilestonesConfig `yaml:"milestones" toml:"milestones"`
	PowerUps   PowerUpsConfig   `yaml:"powerups" toml:"powerups"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
}

// ScreenConfig defines the window size and the terminal cell mapping.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`   // Window width in pixels
	Height int `yaml:"height" toml:"height"` // Window height in pixels
	CellW  int `yaml:"cell_w" toml:"cell_w"` // World units per terminal column
	CellH  int `yaml:"cell_h" toml:"cell_h"` // World units per terminal row
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Size               float64 `yaml:"size" toml:"size"`
	Speed              float64 `yaml:"speed" toml:"speed"` // Per-frame velocity component
	MinSpeedMultiplier float64 `yaml:"min_speed_multiplier" toml:"min_speed_multiplier"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier" toml:"max_speed_multiplier"`
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"` // Per-frame movement
	MinWidth     float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth     float64 `yaml:"max_width" toml:"max_width"`
	ShrinkOnMiss float64 `yaml:"shrink_on_miss" toml:"shrink_on_miss"` // Width lost with each heart
}

// HeartsConfig defines life bookkeeping.
type HeartsConfig struct {
	Initial int `yaml:"initial" toml:"initial"`
}

// ScoringConfig defines combo tracking and difficulty scaling.
type ScoringConfig struct {
	ComboWindow      float64 `yaml:"combo_window" toml:"combo_window"`
	ScalingEnabled   bool    `yaml:"scaling_enabled" toml:"scaling_enabled"`
	ScaleEvery       int     `yaml:"scale_every" toml:"scale_every"` // Points between difficulty steps
	BallSpeedScale   float64 `yaml:"ball_speed_scale" toml:"ball_speed_scale"`
	PaddleSpeedScale float64 `yaml:"paddle_speed_scale" toml:"paddle_speed_scale"`
}

// Milestone policies.
const (
	PolicyHighScore = "highscore" // One threshold above the previous high score
	PolicyList      = "list"      // Fixed ascending thresholds
)

// MilestonesConfig defines how bonus hearts are awarded.
type MilestonesConfig struct {
	Policy     string  `yaml:"policy" toml:"policy"`
	Margin     int     `yaml:"margin" toml:"margin"` // Points past the previous high score
	Thresholds []int   `yaml:"thresholds" toml:"thresholds"`
	WidenBy    float64 `yaml:"widen_by" toml:"widen_by"` // List policy only
}

// PowerUpsConfig defines power-up spawning and effects.
type PowerUpsConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"`
	Size        float64 `yaml:"size" toml:"size"`
	Duration    float64 `yaml:"duration" toml:"duration"` // Lifetime after collection
	WidthFactor float64 `yaml:"width_factor" toml:"width_factor"`
	SpeedFactor float64 `yaml:"speed_factor" toml:"speed_factor"`
	SlowFactor  float64 `yaml:"slow_factor" toml:"slow_factor"`
}

// TimingConfig defines phase and animation timings.
type TimingConfig struct {
	Countdown         float64 `yaml:"countdown" toml:"countdown"`
	AnimationDuration float64 `yaml:"animation_duration" toml:"animation_duration"`
	HoldWindow        float64 `yaml:"hold_window" toml:"hold_window"` // Terminal key-hold emulation
}

// AudioConfig defines sound cue playback.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShieldConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Scoring.ScalingEnabled = false
	} else if preset != "" {
		cfg.Scoring.ScalingEnabled = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Hearts.Initial = 5
		cfg.Paddle.Width = 200
		cfg.Ball.Speed = 2.5
	case DifficultyHard:
		cfg.Hearts.Initial = 2
		cfg.Paddle.Width = 110
		cfg.Ball.Speed = 4
	}
	cfg.Paddle.Width = clampF(cfg.Paddle.Width, cfg.Paddle.MinWidth, cfg.Paddle.MaxWidth)
}
