package shield

import (
	"github.com/vovakirdan/bounce-shield/internal/core"
)

// AnimatedText is a transient overlay message. It drifts by its velocity
// (world units per second) and grows from scale 1 to 1+Grow while fading
// out over Duration seconds of session clock.
type AnimatedText struct {
	Text     string
	Start    float64
	Duration float64
	X, Y     float64 // Center at Start
	VX, VY   float64
	Grow     float64
	Color    core.Color
}

// progress returns elapsed/Duration clamped to [0, 1].
func (a *AnimatedText) progress(now float64) float64 {
	if a.Duration <= 0 {
		return 1
	}
	return core.ClampF((now-a.Start)/a.Duration, 0, 1)
}

// Position returns the center of the text at time now.
func (a *AnimatedText) Position(now float64) (float64, float64) {
	elapsed := core.ClampF(now-a.Start, 0, a.Duration)
	return a.X + a.VX*elapsed, a.Y + a.VY*elapsed
}

// Scale returns the draw scale at time now.
func (a *AnimatedText) Scale(now float64) float64 {
	return 1 + a.Grow*a.progress(now)
}

// Alpha returns the opacity at time now, fading linearly to zero.
func (a *AnimatedText) Alpha(now float64) float64 {
	return 1 - a.progress(now)
}

// Expired reports whether the text's duration has elapsed.
func (a *AnimatedText) Expired(now float64) bool {
	return now-a.Start >= a.Duration
}

// announce shows a message growing in the middle of the field.
func (s *Session) announce(text string, color core.Color) {
	s.announceAt(text, s.vp.H/2, color)
}

// announceAt shows a centered message at height y.
func (s *Session) announceAt(text string, y float64, color core.Color) {
	s.texts = append(s.texts, &AnimatedText{
		Text:     text,
		Start:    s.clock,
		Duration: s.cfg.Timing.AnimationDuration,
		X:        s.vp.W / 2,
		Y:        y,
		VY:       -10,
		Grow:     0.5,
		Color:    color,
	})
}

// floatText shows a small message rising from (x, y).
func (s *Session) floatText(text string, x, y float64, color core.Color) {
	s.texts = append(s.texts, &AnimatedText{
		Text:     text,
		Start:    s.clock,
		Duration: s.cfg.Timing.AnimationDuration,
		X:        x,
		Y:        y,
		VY:       -40,
		Color:    color,
	})
}

// pruneTexts removes expired animations, keeping draw order.
func (s *Session) pruneTexts() {
	kept := s.texts[:0]
	for _, t := range s.texts {
		if !t.Expired(s.clock) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.texts); i++ {
		s.texts[i] = nil
	}
	s.texts = kept
}
