package shield

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bounce-shield/internal/core"
)

// Visual characters for rendering
const (
	BallChar    = '●'
	PaddleChar  = '▀'
	HeartChar   = '♥'
	BorderHoriz = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.session == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	state := g.session.Snapshot()
	cellW := float64(g.cfg.Screen.CellW)
	cellH := float64(g.cfg.Screen.CellH)

	renderHUD(dst, state)
	renderPowerUps(dst, state, cellW, cellH)
	renderPaddle(dst, state, cellW, cellH)
	renderBall(dst, state, cellW, cellH)
	renderTexts(dst, state, cellW, cellH)
	renderOverlay(dst, state)
}

// toCell maps world coordinates to screen cells below the HUD row.
func toCell(x, y, cellW, cellH float64) (int, int) {
	return int(math.Floor(x / cellW)), 1 + int(math.Floor(y/cellH))
}

// renderHUD draws score, hearts, combo and level on the top row.
func renderHUD(dst *core.Screen, st RenderState) {
	x := 1
	score := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawTextColored(x, 0, score, core.ColorBrightGreen)
	x += core.TextWidth(score) + 2

	high := fmt.Sprintf("High: %d", st.HighScore)
	dst.DrawTextColored(x, 0, high, core.ColorBrightYellow)
	x += core.TextWidth(high) + 2

	hearts := heartsText(st.Hearts)
	dst.DrawTextColored(x, 0, hearts, core.ColorBrightRed)
	x += core.TextWidth(hearts) + 2

	if st.Combo >= 2 {
		combo := fmt.Sprintf("x%d", st.Combo)
		dst.DrawTextColored(x, 0, combo, core.ColorOrange)
		x += core.TextWidth(combo) + 2
	}

	// Active power-up timers after the combo
	for _, p := range st.PowerUps {
		if !p.Collected {
			continue
		}
		label := fmt.Sprintf("%s(%d)", p.Kind.String(), int(math.Ceil(p.SecondsLeft)))
		dst.DrawTextColored(x, 0, label, p.Kind.Color())
		x += core.TextWidth(label) + 1
	}

	level := fmt.Sprintf("Lv %d", st.Level)
	dst.DrawTextColored(dst.Width()-core.TextWidth(level)-1, 0, level, core.ColorBrightBlue)
}

// heartsText renders hearts as glyphs, switching to a count when many.
func heartsText(n int) string {
	if n <= 5 {
		return strings.Repeat(string(HeartChar), n)
	}
	return fmt.Sprintf("%c x%d", HeartChar, n)
}

func renderPowerUps(dst *core.Screen, st RenderState, cellW, cellH float64) {
	for _, p := range st.PowerUps {
		if p.Collected {
			continue
		}
		cx, cy := toCell(p.X+p.Size/2, p.Y+p.Size/2, cellW, cellH)
		dst.SetColored(cx, cy, p.Kind.Glyph(), p.Kind.Color())
	}
}

func renderPaddle(dst *core.Screen, st RenderState, cellW, cellH float64) {
	left, row := toCell(st.Paddle.X, st.Paddle.Y, cellW, cellH)
	right := int(math.Ceil(st.Paddle.Right() / cellW))
	for x := left; x < max(right, left+1); x++ {
		dst.SetColored(x, row, PaddleChar, core.ColorBrightCyan)
	}
}

func renderBall(dst *core.Screen, st RenderState, cellW, cellH float64) {
	cx, cy := st.Ball.Center()
	x, y := toCell(cx, cy, cellW, cellH)
	if y < 1 {
		return
	}
	dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
}

// renderTexts draws animated texts centered on their position. Faded
// texts are skipped; a terminal cannot draw partial opacity.
func renderTexts(dst *core.Screen, st RenderState, cellW, cellH float64) {
	for _, t := range st.Texts {
		if t.Alpha < 0.2 {
			continue
		}
		text := t.Text
		if t.Scale >= 1.5 {
			text = spaced(text)
		}
		cx, cy := toCell(t.X, t.Y, cellW, cellH)
		x := cx - core.TextWidth(text)/2
		dst.DrawTextColored(x, max(cy, 1), text, t.Color)
	}
}

// spaced letter-spaces text to suggest a larger size.
func spaced(text string) string {
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// renderOverlay draws persistent phase messages.
func renderOverlay(dst *core.Screen, st RenderState) {
	midY := dst.Height() / 2

	switch st.Phase {
	case PhasePaused:
		boxW, boxH := 24, 5
		boxX := (dst.Width() - boxW) / 2
		boxY := midY - boxH/2
		dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
		dst.DrawBox(boxX, boxY, boxW, boxH)
		dst.DrawTextCenteredColored(boxY+1, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(boxY+3, "P resume · B menu")

	case PhaseGameOver:
		if len(st.Texts) == 0 {
			dst.DrawTextCenteredColored(midY-1, "GAME OVER", core.ColorBrightRed)
			dst.DrawTextCentered(midY+1, fmt.Sprintf("Score: %d  Best combo: x%d", st.Score, st.MaxCombo))
		}
		dst.DrawTextCenteredColored(dst.Height()-2, "R retry · B menu · Q quit", core.ColorGray)
	}
}
