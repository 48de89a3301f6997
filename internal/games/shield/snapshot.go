package shield

import (
	"math"

	"github.com/vovakirdan/bounce-shield/internal/core"
)

// PowerUpView is the render view of a power-up.
type PowerUpView struct {
	X, Y, Size  float64
	Kind        PowerUpKind
	Collected   bool
	SecondsLeft float64
}

// TextView is the render view of an animated text at the snapshot time.
type TextView struct {
	Text  string
	X, Y  float64 // Center
	Scale float64
	Alpha float64
	Color core.Color
}

// RenderState is a read-only copy of everything a renderer needs.
// Slices are freshly allocated; mutating them does not affect the session.
type RenderState struct {
	Clock    float64
	Viewport core.Viewport
	Phase    Phase

	Ball           core.Rect
	BallDX, BallDY float64
	BallMultiplier float64
	Paddle         core.Rect
	PaddleSpeed    float64
	Score          int
	HighScore      int
	Hearts         int
	Combo          int
	MaxCombo       int
	Level          int
	Countdown      int // Whole seconds left, rounded up
	Milestones     []int
	PowerUps       []PowerUpView
	Texts          []TextView
}

// Snapshot returns the current render state.
func (s *Session) Snapshot() RenderState {
	powerUps := make([]PowerUpView, 0, len(s.powerUps))
	for _, p := range s.powerUps {
		powerUps = append(powerUps, PowerUpView{
			X:           p.X,
			Y:           p.Y,
			Size:        p.Size,
			Kind:        p.Kind,
			Collected:   p.Collected,
			SecondsLeft: p.SecondsLeft(s.clock),
		})
	}

	texts := make([]TextView, 0, len(s.texts))
	for _, t := range s.texts {
		x, y := t.Position(s.clock)
		texts = append(texts, TextView{
			Text:  t.Text,
			X:     x,
			Y:     y,
			Scale: t.Scale(s.clock),
			Alpha: t.Alpha(s.clock),
			Color: t.Color,
		})
	}

	countdown := 0
	if s.phase == PhaseCountdown {
		countdown = int(math.Ceil(s.countdown))
	}

	return RenderState{
		Clock:    s.clock,
		Viewport: s.vp,
		Phase:    s.phase,

		Ball:           s.ball.Rect(),
		BallDX:         s.ball.DX,
		BallDY:         s.ball.DY,
		BallMultiplier: s.ball.SpeedMultiplier,
		Paddle:         s.paddle.Rect(),
		PaddleSpeed:    s.paddle.Speed,
		Score:          s.score,
		HighScore:      s.highScore,
		Hearts:         s.hearts,
		Combo:          s.combo,
		MaxCombo:       s.maxCombo,
		Level:          s.difficulty.Level(),
		Countdown:      countdown,
		Milestones:     append([]int(nil), s.milestones...),
		PowerUps:       powerUps,
		Texts:          texts,
	}
}

// Hash returns a simple hash of the render state for determinism testing.
func (r *RenderState) Hash() uint64 {
	h := math.Float64bits(r.Clock)
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation

	mixF(r.Viewport.W)
	mixF(r.Viewport.H)
	mixI(int(r.Phase))
	for _, f := range []float64{
		r.Ball.X, r.Ball.Y, r.Ball.W, r.BallDX, r.BallDY, r.BallMultiplier,
		r.Paddle.X, r.Paddle.Y, r.Paddle.W, r.PaddleSpeed,
	} {
		mixF(f)
	}
	for _, i := range []int{r.Score, r.HighScore, r.Hearts, r.Combo, r.MaxCombo, r.Level, r.Countdown} {
		mixI(i)
	}
	for _, m := range r.Milestones {
		mixI(m)
	}
	for _, p := range r.PowerUps {
		mixI(int(p.Kind))
		mixF(p.X)
		mixF(p.Y)
		if p.Collected {
			mixI(1)
		}
		mixF(p.SecondsLeft)
	}
	for _, t := range r.Texts {
		for _, b := range []byte(t.Text) {
			mix(uint64(b))
		}
		mixF(t.X)
		mixF(t.Y)
		mixF(t.Scale)
	}
	return h
}
