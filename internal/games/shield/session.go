// Package shield implements Bounce Shield: keep a bouncing ball in play
// with a paddle, earn points and combos, collect power-ups and survive
// on a small stock of hearts.
//
// Session is the pure, frame-stepped core. Game adapts it to the registry
// interface and the terminal screen; other shells drive Session directly.
package shield

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/core"
)

// Phase is the session's current state.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ControlHint is shown once the countdown finishes.
const ControlHint = "←/→ move · P pause"

// Session owns the complete state of one game. It is not safe for
// concurrent use; a single loop calls Update once per frame.
type Session struct {
	cfg        config.ShieldConfig
	rng        Source
	difficulty *config.DifficultyManager

	ball     Ball
	paddle   Paddle
	powerUps []*PowerUp
	texts    []*AnimatedText

	phase         Phase
	countdown     float64
	countdownTick int // Last whole second announced
	clock         float64
	vp            core.Viewport

	score         int
	highScore     int
	prevHighScore int
	firstSession  bool
	announcedHigh bool
	hearts        int
	combo         int
	maxCombo      int
	lastHit       float64
	hasHit        bool
	milestones    []int

	events []core.Event
}

// NewSession creates a session in the Countdown phase. The viewport starts
// at the configured screen size until the first Update supplies one.
func NewSession(cfg config.ShieldConfig, rng Source) *Session {
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	s := &Session{
		cfg:          cfg,
		rng:          rng,
		difficulty:   config.NewDifficultyManager(cfg.Scoring, cfg.Ball.MaxSpeedMultiplier),
		firstSession: true,
		vp: core.Viewport{
			W: float64(cfg.Screen.Width),
			H: float64(cfg.Screen.Height),
		},
	}
	s.reset()
	return s
}

// SeedHighScore starts the session from an existing best score, as if an
// earlier game in this process had set it. Only valid before play starts.
func (s *Session) SeedHighScore(best int) {
	if best <= 0 || s.phase != PhaseCountdown || s.score > 0 {
		return
	}
	s.highScore = best
	s.prevHighScore = best
	s.firstSession = false
	s.milestones = s.buildMilestones()
}

// reset reinitializes everything except the high-score bookkeeping.
func (s *Session) reset() {
	s.score = 0
	s.hearts = s.cfg.Hearts.Initial
	s.combo = 0
	s.maxCombo = 0
	s.lastHit = 0
	s.hasHit = false
	s.announcedHigh = false
	s.powerUps = nil
	s.texts = nil
	s.difficulty.Reset()
	s.milestones = s.buildMilestones()

	s.paddle = Paddle{
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
		Speed:  s.cfg.Paddle.Speed,
	}
	s.setPaddleWidth(s.cfg.Paddle.Width)
	s.paddle.X = (s.vp.W - s.paddle.Width) / 2
	ClampPaddle(&s.paddle, s.vp)

	s.ball = Ball{
		Size:            s.cfg.Ball.Size,
		SpeedMultiplier: 1,
	}
	s.setBallMultiplier(1)
	s.respawnBall()

	s.phase = PhaseCountdown
	s.countdown = s.cfg.Timing.Countdown
	s.countdownTick = int(math.Ceil(s.countdown))
	if s.countdownTick > 0 {
		s.countdownText(s.countdownTick)
	}
}

// buildMilestones returns the heart-award thresholds for a new round.
func (s *Session) buildMilestones() []int {
	switch s.cfg.Milestones.Policy {
	case config.PolicyList:
		return append([]int(nil), s.cfg.Milestones.Thresholds...)
	default:
		if s.firstSession {
			return nil
		}
		return []int{s.prevHighScore + s.cfg.Milestones.Margin + 1}
	}
}

// Update advances the session by one frame of dt seconds and returns the
// events emitted during the step, in order. Negative dt counts as zero.
func (s *Session) Update(dt float64, in core.InputFrame, vp core.Viewport) []core.Event {
	s.events = nil
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s.setViewport(vp)

	switch s.phase {
	case PhaseCountdown:
		s.clock += dt
		s.updateCountdown(dt)

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			s.phase = PhasePaused
			break
		}
		s.clock += dt
		s.step(in)

	case PhasePaused:
		if in.Has(core.ActionPause) {
			s.phase = PhasePlaying
			s.texts = nil
		}

	case PhaseGameOver:
		s.clock += dt
		if in.Has(core.ActionRestart) {
			s.restart()
		}
	}

	s.pruneTexts()
	return s.events
}

// setViewport adopts the shell's current drawable area and re-clamps the
// paddle and ball against it. Degenerate sizes are ignored.
func (s *Session) setViewport(vp core.Viewport) {
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	s.vp = vp
	s.setPaddleWidth(s.paddle.Width)
	ClampPaddle(&s.paddle, s.vp)
	ClampBall(&s.ball, s.vp)
}

// updateCountdown ticks the start timer and begins play at zero.
func (s *Session) updateCountdown(dt float64) {
	s.countdown -= dt
	if s.countdown > 0 {
		if n := int(math.Ceil(s.countdown)); n < s.countdownTick {
			s.countdownTick = n
			s.countdownText(n)
		}
		return
	}

	s.countdown = 0
	s.countdownTick = 0
	s.phase = PhasePlaying
	s.texts = nil
	s.announce("Game Start!", core.ColorBrightGreen)
	s.announceAt(ControlHint, s.vp.H*2/3, core.ColorGray)
	s.emit(core.EventGameStart)
}

func (s *Session) countdownText(n int) {
	s.texts = append(s.texts, &AnimatedText{
		Text:     fmt.Sprintf("%d", n),
		Start:    s.clock,
		Duration: math.Min(1, s.cfg.Timing.AnimationDuration),
		X:        s.vp.W / 2,
		Y:        s.vp.H / 2,
		Grow:     1,
		Color:    core.ColorBrightYellow,
	})
}

// step runs one Playing frame in a fixed order.
func (s *Session) step(in core.InputFrame) {
	s.ball.Move()

	ResolveWalls(&s.ball, s.vp)

	// A ball already below the screen cannot be caught.
	lost := FellOff(&s.ball, s.vp)
	if !lost && PaddleContact(&s.ball, &s.paddle) {
		BounceOffPaddle(&s.ball, &s.paddle)
		s.onPaddleHit()
	}

	if lost {
		s.onMiss()
		if s.phase == PhaseGameOver {
			return
		}
	}

	s.collectPowerUps()

	MovePaddle(&s.paddle, in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight), s.vp)
}

// onPaddleHit scores a successful bounce.
func (s *Session) onPaddleHit() {
	s.score++

	if s.hasHit && s.clock-s.lastHit < s.cfg.Scoring.ComboWindow {
		s.combo++
	} else {
		s.combo = 1
	}
	s.hasHit = true
	s.lastHit = s.clock
	s.maxCombo = max(s.maxCombo, s.combo)

	s.emit(core.EventPaddleHit)

	if s.combo >= 2 {
		cx, _ := s.ball.Rect().Center()
		s.floatText(fmt.Sprintf("Combo x%d", s.combo), cx, s.paddle.Y-s.ball.Size, core.ColorOrange)
	}

	s.checkHighScore()
	s.trySpawnPowerUp()

	if s.difficulty.ShouldScale(s.score) {
		mult, speed := s.difficulty.Scale(s.ball.SpeedMultiplier, s.paddle.Speed)
		s.setBallMultiplier(mult)
		s.paddle.Speed = speed
		s.announceAt(fmt.Sprintf("Level %d", s.difficulty.Level()), s.vp.H/3, core.ColorBrightBlue)
	}
}

// checkHighScore updates the high score and claims the next milestone.
// At most one threshold is consumed per scoring event.
func (s *Session) checkHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
		if !s.announcedHigh {
			s.announcedHigh = true
			s.announceAt("New High Score!", s.vp.H/4, core.ColorBrightYellow)
		}
	}

	if len(s.milestones) == 0 || s.milestones[0] > s.score {
		return
	}
	s.milestones = s.milestones[1:]
	s.hearts++
	if s.cfg.Milestones.Policy == config.PolicyList {
		s.setPaddleWidth(s.paddle.Width + s.cfg.Milestones.WidenBy)
		ClampPaddle(&s.paddle, s.vp)
	}
	cx, _ := s.paddle.Rect().Center()
	s.floatText("+1 ♥", cx, s.paddle.Y-2*s.ball.Size, core.ColorBrightRed)
	s.emit(core.EventHeartAwarded)
}

// onMiss handles the ball leaving through the bottom edge.
func (s *Session) onMiss() {
	if s.hearts > 0 {
		s.hearts--
	}
	s.texts = nil

	if s.hearts == 0 {
		s.gameOver()
		return
	}

	s.setPaddleWidth(s.paddle.Width - s.cfg.Paddle.ShrinkOnMiss)
	ClampPaddle(&s.paddle, s.vp)
	s.respawnBall()
	s.combo = 0
}

func (s *Session) gameOver() {
	s.phase = PhaseGameOver
	s.highScore = max(s.highScore, s.score)
	s.announce("GAME OVER!", core.ColorBrightRed)
	s.texts = append(s.texts, &AnimatedText{
		Text:     "Press R to retry!",
		Start:    s.clock,
		Duration: s.cfg.Timing.AnimationDuration * 2,
		X:        s.vp.W / 2,
		Y:        s.vp.H * 2 / 3,
		Color:    core.ColorWhite,
	})
	s.emit(core.EventGameOver)
}

// restart begins a fresh round after game over. Requests in any other
// phase are ignored.
func (s *Session) restart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.prevHighScore = s.highScore
	s.firstSession = false
	s.reset()
}

// respawnBall places the ball at a random spot in the upper half, heading
// down and to a random side.
func (s *Session) respawnBall() {
	size := s.ball.Size
	speed := s.cfg.Ball.Speed

	spanX := math.Max(s.vp.W-2*size, 0)
	spanY := math.Max(s.vp.H/2-size, 0)
	s.ball.X = size + s.rng.Float64()*spanX
	s.ball.Y = size + s.rng.Float64()*spanY
	if spanX == 0 {
		s.ball.X = 0
	}

	if s.rng.Intn(2) == 0 {
		s.ball.DX = -speed
	} else {
		s.ball.DX = speed
	}
	s.ball.DY = speed
}

// setPaddleWidth clamps to the configured bounds and the viewport width.
func (s *Session) setPaddleWidth(w float64) {
	w = core.ClampF(w, s.cfg.Paddle.MinWidth, s.cfg.Paddle.MaxWidth)
	if s.vp.W > 0 && w > s.vp.W {
		w = s.vp.W
	}
	s.paddle.Width = w
}

// setBallMultiplier keeps the multiplier inside its configured bounds.
func (s *Session) setBallMultiplier(m float64) {
	lo := s.cfg.Ball.MinSpeedMultiplier
	if lo <= 0 {
		lo = 0.01
	}
	hi := s.cfg.Ball.MaxSpeedMultiplier
	if hi < lo {
		hi = lo
	}
	s.ball.SpeedMultiplier = core.ClampF(m, lo, hi)
}

func (s *Session) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{Kind: kind, Score: s.score})
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// Hearts returns the remaining hearts.
func (s *Session) Hearts() int { return s.hearts }

// Combo returns the current combo count.
func (s *Session) Combo() int { return s.combo }

// MaxCombo returns the longest combo this round.
func (s *Session) MaxCombo() int { return s.maxCombo }

// Level returns the difficulty level.
func (s *Session) Level() int { return s.difficulty.Level() }

// Viewport returns the viewport used by the last update.
func (s *Session) Viewport() core.Viewport { return s.vp }

// Config returns the session's configuration.
func (s *Session) Config() config.ShieldConfig { return s.cfg }
