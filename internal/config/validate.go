package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when any rule is violated.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the config for values the session cannot run with.
// All violations are reported together.
func Validate(cfg ShieldConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Screen.Width > 0 && cfg.Screen.Height > 0,
		"screen: size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	check(cfg.Screen.CellW > 0 && cfg.Screen.CellH > 0,
		"screen: cell size must be positive, got %dx%d", cfg.Screen.CellW, cfg.Screen.CellH)

	check(cfg.Ball.Size > 0, "ball: size must be positive, got %v", cfg.Ball.Size)
	check(cfg.Ball.Speed > 0, "ball: speed must be positive, got %v", cfg.Ball.Speed)
	check(cfg.Ball.MinSpeedMultiplier > 0,
		"ball: min_speed_multiplier must be positive, got %v", cfg.Ball.MinSpeedMultiplier)
	check(cfg.Ball.MaxSpeedMultiplier >= cfg.Ball.MinSpeedMultiplier,
		"ball: max_speed_multiplier %v below min %v", cfg.Ball.MaxSpeedMultiplier, cfg.Ball.MinSpeedMultiplier)

	check(cfg.Paddle.Height > 0, "paddle: height must be positive, got %v", cfg.Paddle.Height)
	check(cfg.Paddle.Speed > 0, "paddle: speed must be positive, got %v", cfg.Paddle.Speed)
	check(cfg.Paddle.MinWidth > 0, "paddle: min_width must be positive, got %v", cfg.Paddle.MinWidth)
	check(cfg.Paddle.MaxWidth >= cfg.Paddle.MinWidth,
		"paddle: max_width %v below min_width %v", cfg.Paddle.MaxWidth, cfg.Paddle.MinWidth)
	check(cfg.Paddle.Width >= cfg.Paddle.MinWidth && cfg.Paddle.Width <= cfg.Paddle.MaxWidth,
		"paddle: width %v outside [%v, %v]", cfg.Paddle.Width, cfg.Paddle.MinWidth, cfg.Paddle.MaxWidth)
	check(cfg.Paddle.ShrinkOnMiss >= 0, "paddle: shrink_on_miss must not be negative")

	check(cfg.Hearts.Initial > 0, "hearts: initial must be positive, got %d", cfg.Hearts.Initial)

	check(cfg.Scoring.ComboWindow > 0, "scoring: combo_window must be positive")
	check(cfg.Scoring.ScaleEvery > 0, "scoring: scale_every must be positive, got %d", cfg.Scoring.ScaleEvery)
	check(cfg.Scoring.BallSpeedScale > 0 && cfg.Scoring.PaddleSpeedScale > 0,
		"scoring: speed scales must be positive")

	switch cfg.Milestones.Policy {
	case PolicyHighScore:
		check(cfg.Milestones.Margin >= 0, "milestones: margin must not be negative")
	case PolicyList:
		for i := 1; i < len(cfg.Milestones.Thresholds); i++ {
			if cfg.Milestones.Thresholds[i] <= cfg.Milestones.Thresholds[i-1] {
				errs = append(errs, fmt.Errorf("milestones: thresholds must be strictly ascending, got %v",
					cfg.Milestones.Thresholds))
				break
			}
		}
	default:
		errs = append(errs, fmt.Errorf("milestones: unknown policy %q", cfg.Milestones.Policy))
	}
	check(cfg.Milestones.WidenBy >= 0, "milestones: widen_by must not be negative")

	check(cfg.PowerUps.SpawnChance >= 0 && cfg.PowerUps.SpawnChance <= 1,
		"powerups: spawn_chance %v outside [0, 1]", cfg.PowerUps.SpawnChance)
	check(cfg.PowerUps.Size > 0, "powerups: size must be positive")
	check(cfg.PowerUps.Duration >= 0, "powerups: duration must not be negative")
	check(cfg.PowerUps.WidthFactor > 0 && cfg.PowerUps.SpeedFactor > 0 && cfg.PowerUps.SlowFactor > 0,
		"powerups: effect factors must be positive")

	check(cfg.Timing.Countdown >= 0, "timing: countdown must not be negative")
	check(cfg.Timing.AnimationDuration > 0, "timing: animation_duration must be positive")
	check(cfg.Timing.HoldWindow >= 0, "timing: hold_window must not be negative")

	check(cfg.Audio.Volume >= 0 && cfg.Audio.Volume <= 1, "audio: volume %v outside [0, 1]", cfg.Audio.Volume)
	check(cfg.Audio.SampleRate > 0, "audio: sample_rate must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
