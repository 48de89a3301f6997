package shield

import (
	"github.com/vovakirdan/bounce-shield/internal/config"
	"github.com/vovakirdan/bounce-shield/internal/core"
	"github.com/vovakirdan/bounce-shield/internal/registry"
)

// Mode selects the milestone policy of a registered game.
type Mode int

const (
	ModeStandard Mode = iota // Beat the previous high score for a heart
	ModeClassic              // Fixed milestone list, paddle grows
)

// Minimum terminal size in cells.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration for mode, applying the CLI preset.
// Falls back to the embedded defaults if the file cannot be used.
func LoadConfig(mode Mode) (config.ShieldConfig, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		cfg = config.Default()
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if mode == ModeClassic {
		cfg.Milestones.Policy = config.PolicyList
	}
	return cfg, err
}

// Game adapts a Session to the registry's cell-based Game interface.
// The top terminal row holds the HUD; the rest is the playfield, where
// each cell covers CellW x CellH world units.
type Game struct {
	mode    Mode
	session *Session
	cfg     config.ShieldConfig
	runtime core.RuntimeConfig
	dt      float64
	last    core.StepResult

	screenTooSmall bool
}

func init() {
	registry.Register("shield", func() registry.Game { return New() })
	registry.Register("shield_classic", func() registry.Game { return NewClassic() })
}

// New creates a standard Bounce Shield game.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a Bounce Shield game with the fixed milestone list.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "shield_classic"
	}
	return "shield"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Bounce Shield (Classic)"
	}
	return "Bounce Shield"
}

// Reset initializes a new session sized to the terminal.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := LoadConfig(g.mode) // defaults are used on error
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig initializes a new session with an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.ShieldConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.cfg = cfg
	g.dt = 1 / float64(runtime.TickRate)

	vp := g.viewport()
	g.cfg.Screen.Width = int(vp.W)
	g.cfg.Screen.Height = int(vp.H)

	g.session = NewSession(g.cfg, NewSimpleRNG(runtime.Seed))
	g.session.SeedHighScore(runtime.HighScore)
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.last = core.StepResult{State: g.State()}
}

// Resize updates the terminal size. The session re-clamps on the next step.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// viewport converts the terminal size to world units, minus the HUD row.
func (g *Game) viewport() core.Viewport {
	return core.Viewport{
		W: float64(g.runtime.ScreenW * g.cfg.Screen.CellW),
		H: float64(max(g.runtime.ScreenH-1, 0) * g.cfg.Screen.CellH),
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	events := g.session.Update(g.dt, in, g.viewport())
	g.last = core.StepResult{State: g.State(), Events: events}
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Hearts:    s.Hearts(),
		MaxCombo:  s.MaxCombo(),
		Level:     s.Level(),
		GameOver:  s.Phase() == PhaseGameOver,
		Paused:    s.Phase() == PhasePaused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// HoldWindow returns how long a terminal key press counts as held.
func (g *Game) HoldWindow() float64 {
	return g.cfg.Timing.HoldWindow
}
