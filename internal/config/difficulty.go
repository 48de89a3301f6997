package config

import "math"

// DifficultyManager steps game speed up as the score grows.
// Every ScaleEvery points the ball speed multiplier and the paddle speed
// are multiplied by their scale factors and the level goes up by one.
type DifficultyManager struct {
	cfg     ScoringConfig
	maxBall float64
	level   int
}

// NewDifficultyManager creates a new difficulty manager at level 1.
// maxBallMultiplier caps the ball speed multiplier.
func NewDifficultyManager(cfg ScoringConfig, maxBallMultiplier float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		maxBall: maxBallMultiplier,
		level:   1,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.ScalingEnabled && d.cfg.ScaleEvery > 0
}

// Level returns the current difficulty level, starting at 1.
func (d *DifficultyManager) Level() int {
	return d.level
}

// Reset returns to level 1.
func (d *DifficultyManager) Reset() {
	d.level = 1
}

// ShouldScale reports whether reaching score triggers a difficulty step.
func (d *DifficultyManager) ShouldScale(score int) bool {
	return d.IsEnabled() && score > 0 && score%d.cfg.ScaleEvery == 0
}

// Scale applies one difficulty step and returns the new ball speed
// multiplier and paddle speed.
func (d *DifficultyManager) Scale(ballMultiplier, paddleSpeed float64) (float64, float64) {
	d.level++
	ball := ballMultiplier * d.cfg.BallSpeedScale
	if d.maxBall > 0 {
		ball = math.Min(ball, d.maxBall)
	}
	return ball, paddleSpeed * d.cfg.PaddleSpeedScale
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
