package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce-shield/internal/audio"
	"github.com/vovakirdan/bounce-shield/internal/core"
	"github.com/vovakirdan/bounce-shield/internal/registry"
	"github.com/vovakirdan/bounce-shield/internal/storage"
)

// defaultHoldWindow is used when a game does not specify its own.
const defaultHoldWindow = 0.15

// holdWindower is implemented by games that tune terminal key holds.
type holdWindower interface {
	HoldWindow() float64
}

// GameOptions carries the collaborators a GameModel reports to.
// Every field is optional.
type GameOptions struct {
	Store  *storage.Store
	Audio  *audio.Player
	Player string
	Logger *log.Logger
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	id         int64 // Tick loop identifier
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	dt         float64
	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      int // Results written to the leaderboard
}

// NewGameModel creates a model for game and resets it. The starting high
// score comes from the leaderboard when a store is available.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(game.ID()); err == nil {
			cfg.HighScore = max(cfg.HighScore, best)
		} else if opts.Logger != nil {
			opts.Logger.Warn("could not read high score", "mode", game.ID(), "error", err)
		}
	}

	game.Reset(cfg)

	window := defaultHoldWindow
	if hw, ok := game.(holdWindower); ok && hw.HoldWindow() > 0 {
		window = hw.HoldWindow()
	}

	return GameModel{
		id:         nextLoopID(),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(window),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		dt:         1 / float64(cfg.TickRate),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" && m.standalone {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action)
	case core.ActionBack:
		// Only leave a game that is not in motion
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	case core.ActionPause:
		m.holds.Release()
		m.inputFrame.Set(action)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.holds.Apply(&m.inputFrame, m.dt)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.opts.Audio.Play(ev.Kind)
		if ev.Kind == core.EventGameOver {
			m.saveResult()
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.id, m.config.TickRate)
}

// saveResult records the finished game on the leaderboard.
func (m *GameModel) saveResult() {
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		Player:   m.opts.Player,
		Mode:     m.game.ID(),
		Score:    m.gameState.Score,
		MaxCombo: m.gameState.MaxCombo,
		Level:    m.gameState.Level,
	})
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save result", "mode", m.game.ID(), "error", err)
		}
		return
	}
	m.saved++
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bounce", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Saved returns how many results this model wrote to the leaderboard.
func (m GameModel) Saved() int {
	return m.saved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits or asks for
// the menu. It reports whether the menu was requested.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
