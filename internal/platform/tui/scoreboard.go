package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce-shield/internal/registry"
	"github.com/vovakirdan/bounce-shield/internal/storage"
)

const leaderboardSize = 100 // Results loaded per mode

// ScoreboardKeyMap defines the key bindings for the leaderboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings. Clear starts
// disabled and is only offered where the store belongs to one player.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x x", "clear mode"),
			key.WithDisabled(),
		),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int // Index into modes
	store     *storage.Store
	scores    []storage.Result
	stats     *storage.ModeStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	armed     bool // First clear press seen, waiting for confirmation
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a leaderboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// WithClear enables clearing the selected mode's results. Only local
// leaderboards use it; the SSH store is shared between players.
func (m ScoreboardModel) WithClear() ScoreboardModel {
	m.keys.Clear.SetEnabled(m.store != nil)
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Combo", Width: 6},
		{Title: "Lv", Width: 4},
		{Title: "Played", Width: 13},
	}

	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	return t
}

func (m *ScoreboardModel) currentMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches results and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.currentMode()
		if scores, err := m.store.TopResults(id, leaderboardSize); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, r := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.Player,
			strconv.Itoa(r.Score),
			"x" + strconv.Itoa(r.MaxCombo),
			strconv.Itoa(r.Level),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// clear wipes the selected mode once the clear key was pressed twice.
func (m *ScoreboardModel) clear() {
	if !m.armed {
		m.armed = true
		return
	}
	m.armed = false
	if err := m.store.ClearResults(m.currentMode()); err == nil {
		m.reload()
	}
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init initializes the leaderboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Clear) {
			m.armed = false
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.modeTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	if len(m.scores) == 0 {
		b.WriteString(boxStyle.Render(dimStyle.Italic(true).Padding(1, 4).
			Render("No results yet.\nFinish a game to claim the top spot!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	if m.armed {
		b.WriteString(selectedStyle.Render("press x again to clear " + m.modes[m.mode].Title))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// modeTabs lists the modes, falling back to the selected one when the
// row would not fit.
func (m ScoreboardModel) modeTabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		name := truncate(g.Title, 24)
		if i == m.mode {
			tabs[i] = selectedStyle.Padding(0, 1).Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

// statsLine summarizes the selected mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no games this session"
	}
	return fmt.Sprintf("%d games  ·  best %d  ·  avg %.1f  ·  best combo x%d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestCombo)
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the local leaderboard screen, where clearing is allowed.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height).WithClear(), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
