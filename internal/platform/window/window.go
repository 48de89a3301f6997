// Package window runs Bounce Shield in a resizable desktop window with Ebiten.
// The window size is the viewport: one world unit is one pixel.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bounce-shield/internal/audio"
	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/core"
	"github.com/vovakirdan/bounce-shield/internal/games/shield"
	"github.com/vovakirdan/bounce-shield/internal/storage"
)

// Options configures a window shell. Store, Audio and Logger are optional.
type Options struct {
	Config   config.ShieldConfig
	ModeID   string // Leaderboard mode name
	Title    string
	Seed     int64
	TickRate int
	Player   string

	Store  *storage.Store
	Audio  *audio.Player
	Logger *log.Logger
}

// Shell implements ebiten.Game around a single session.
type Shell struct {
	opts    Options
	session *shield.Session
	vp      core.Viewport
	dt      float64
	fonts   *fonts
	quit    bool
}

// New creates a shell. The starting high score comes from the store.
func New(opts Options) *Shell {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.ModeID == "" {
		opts.ModeID = "shield"
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}

	session := shield.NewSession(opts.Config, shield.NewSimpleRNG(opts.Seed))
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(opts.ModeID); err == nil {
			session.SeedHighScore(best)
		} else if opts.Logger != nil {
			opts.Logger.Warn("could not read high score", "mode", opts.ModeID, "error", err)
		}
	}

	return &Shell{
		opts:    opts,
		session: session,
		vp: core.Viewport{
			W: float64(opts.Config.Screen.Width),
			H: float64(opts.Config.Screen.Height),
		},
		dt:    1 / float64(opts.TickRate),
		fonts: newFonts(),
	}
}

// Update polls the keyboard and advances the session one tick.
func (s *Shell) Update() error {
	if s.quit {
		return ebiten.Termination
	}

	in := pollInput(ebiten.IsKeyPressed, justPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if in.Has(core.ActionBack) {
		phase := s.session.Phase()
		if phase == shield.PhasePaused || phase == shield.PhaseGameOver {
			return ebiten.Termination
		}
	}

	for _, ev := range s.session.Update(s.dt, in, s.vp) {
		s.opts.Audio.Play(ev.Kind)
		if ev.Kind == core.EventGameOver {
			s.saveResult()
		}
	}
	return nil
}

func (s *Shell) saveResult() {
	if s.opts.Store == nil {
		return
	}
	_, err := s.opts.Store.SaveResult(storage.Result{
		Player:   s.opts.Player,
		Mode:     s.opts.ModeID,
		Score:    s.session.Score(),
		MaxCombo: s.session.MaxCombo(),
		Level:    s.session.Level(),
	})
	if err != nil && s.opts.Logger != nil {
		s.opts.Logger.Warn("could not save result", "error", err)
	}
}

// Draw renders the latest snapshot.
func (s *Shell) Draw(screen *ebiten.Image) {
	drawState(screen, s.session.Snapshot(), s.fonts)
}

// Layout tracks the window size so the playfield follows resizes.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		s.vp = core.Viewport{W: float64(outsideWidth), H: float64(outsideHeight)}
	}
	return outsideWidth, outsideHeight
}

// Session exposes the running session.
func (s *Shell) Session() *shield.Session {
	return s.session
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	shell := New(opts)

	title := opts.Title
	if title == "" {
		title = "Bounce Shield"
	}
	ebiten.SetWindowSize(opts.Config.Screen.Width, opts.Config.Screen.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(shell.opts.TickRate)

	err := ebiten.RunGame(shell)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
