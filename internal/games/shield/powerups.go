package shield

import (
	"github.com/vovakirdan/bounce-shield/internal/core"
)

// PowerUpKind represents the effect a power-up grants when collected.
type PowerUpKind int

const (
	PowerUpWidthIncrease PowerUpKind = iota // Paddle width x1.5
	PowerUpSpeedBoost                       // Paddle speed x1.5
	PowerUpExtraHeart                       // Hearts +1
	PowerUpSlowBall                         // Ball speed multiplier x0.75
	powerUpKindCount                        // Sentinel for counting kinds
)

// Glyph returns the terminal character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpWidthIncrease:
		return 'W'
	case PowerUpSpeedBoost:
		return '»'
	case PowerUpExtraHeart:
		return '♥'
	case PowerUpSlowBall:
		return 'S'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpWidthIncrease:
		return "Wide"
	case PowerUpSpeedBoost:
		return "Fast"
	case PowerUpExtraHeart:
		return "Heart"
	case PowerUpSlowBall:
		return "Slow"
	default:
		return "?"
	}
}

// Color returns the display color of the power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpWidthIncrease:
		return core.ColorBrightCyan
	case PowerUpSpeedBoost:
		return core.ColorBrightYellow
	case PowerUpExtraHeart:
		return core.ColorBrightRed
	case PowerUpSlowBall:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}

// PowerUp is a collectible square placed in the upper half of the field.
// Once collected it lingers until ExpiresAt so the HUD can show it.
type PowerUp struct {
	Kind      PowerUpKind
	X, Y      float64
	Size      float64
	Collected bool
	ExpiresAt float64 // Session clock; meaningful only once collected
}

// Rect returns the power-up's bounding box.
func (p *PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Active reports whether the power-up should be kept at time now.
func (p *PowerUp) Active(now float64) bool {
	return !p.Collected || now < p.ExpiresAt
}

// SecondsLeft returns the remaining post-collection time, or 0.
func (p *PowerUp) SecondsLeft(now float64) float64 {
	if !p.Collected || now >= p.ExpiresAt {
		return 0
	}
	return p.ExpiresAt - now
}

// trySpawnPowerUp rolls for a power-up after a paddle hit.
// Returns true if one was spawned.
func (s *Session) trySpawnPowerUp() bool {
	cfg := s.cfg.PowerUps
	if !cfg.Enabled || cfg.SpawnChance <= 0 {
		return false
	}
	if s.rng.Float64() >= cfg.SpawnChance {
		return false
	}

	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	maxX := core.ClampF(s.vp.W-cfg.Size, 0, s.vp.W)
	maxY := core.ClampF(s.vp.H/2-cfg.Size, 0, s.vp.H)

	s.powerUps = append(s.powerUps, &PowerUp{
		Kind: kind,
		X:    s.rng.Float64() * maxX,
		Y:    s.rng.Float64() * maxY,
		Size: cfg.Size,
	})
	return true
}

// collectPowerUps applies every uncollected power-up the ball overlaps,
// then drops the ones whose post-collection window has passed.
func (s *Session) collectPowerUps() {
	ball := s.ball.Rect()

	for _, p := range s.powerUps {
		if p.Collected || !ball.Intersects(p.Rect()) {
			continue
		}
		p.Collected = true
		p.ExpiresAt = s.clock + s.cfg.PowerUps.Duration
		s.applyPowerUp(p.Kind)
		s.emit(core.EventPowerUpCollected)
		s.floatText("+"+p.Kind.String(), p.X+p.Size/2, p.Y, p.Kind.Color())
	}

	active := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Active(s.clock) {
			active = append(active, p)
		}
	}
	for i := len(active); i < len(s.powerUps); i++ {
		s.powerUps[i] = nil
	}
	s.powerUps = active
}

// applyPowerUp applies a power-up effect. Effects are permanent for the
// rest of the round.
func (s *Session) applyPowerUp(kind PowerUpKind) {
	cfg := s.cfg.PowerUps

	switch kind {
	case PowerUpWidthIncrease:
		s.setPaddleWidth(s.paddle.Width * cfg.WidthFactor)
	case PowerUpSpeedBoost:
		s.paddle.Speed *= cfg.SpeedFactor
	case PowerUpExtraHeart:
		s.hearts++
	case PowerUpSlowBall:
		s.setBallMultiplier(s.ball.SpeedMultiplier * cfg.SlowFactor)
	}
}
