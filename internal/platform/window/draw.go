package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bounce-shield/internal/core"
	"github.com/vovakirdan/bounce-shield/internal/games/shield"
)

var (
	background = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}
	dimOverlay = color.RGBA{A: 0xa0}
)

// palette maps cell colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:           {R: 0xcc, G: 0x33, B: 0x33, A: 0xff},
	core.ColorGreen:         {R: 0x33, G: 0xaa, B: 0x33, A: 0xff},
	core.ColorYellow:        {R: 0xcc, G: 0xaa, B: 0x22, A: 0xff},
	core.ColorBlue:          {R: 0x33, G: 0x55, B: 0xcc, A: 0xff},
	core.ColorMagenta:       {R: 0xaa, G: 0x33, B: 0xaa, A: 0xff},
	core.ColorCyan:          {R: 0x22, G: 0xaa, B: 0xaa, A: 0xff},
	core.ColorWhite:         {R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	core.ColorBrightGreen:   {R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xee, B: 0x55, A: 0xff},
	core.ColorBrightBlue:    {R: 0x66, G: 0x88, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x66, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x99, B: 0x22, A: 0xff},
	core.ColorGray:          {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// fonts holds the faces used for HUD and animated text.
type fonts struct {
	face       text.Face
	lineHeight float64
}

func newFonts() *fonts {
	return &fonts{
		face:       text.NewGoXFace(basicfont.Face7x13),
		lineHeight: 13,
	}
}

// drawText draws str with its top-left corner at (x, y).
func (f *fonts) drawText(dst *ebiten.Image, str string, x, y, scale, alpha float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(c))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, str, f.face, op)
}

// drawCentered draws str centered on (cx, cy).
func (f *fonts) drawCentered(dst *ebiten.Image, str string, cx, cy, scale, alpha float64, c core.Color) {
	w, h := text.Measure(str, f.face, f.lineHeight)
	f.drawText(dst, str, cx-w*scale/2, cy-h*scale/2, scale, alpha, c)
}

func drawState(dst *ebiten.Image, st shield.RenderState, f *fonts) {
	dst.Fill(background)

	for _, p := range st.PowerUps {
		if p.Collected {
			continue
		}
		c := rgba(p.Kind.Color())
		vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size), 2, c, true)
		f.drawCentered(dst, p.Kind.String()[:1], p.X+p.Size/2, p.Y+p.Size/2, 1, 1, p.Kind.Color())
	}

	pd := st.Paddle
	vector.DrawFilledRect(dst, float32(pd.X), float32(pd.Y), float32(pd.W), float32(pd.H), rgba(core.ColorBrightCyan), true)

	cx, cy := st.Ball.Center()
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(st.Ball.W/2), rgba(core.ColorBrightWhite), true)

	drawHUD(dst, st, f)

	for _, t := range st.Texts {
		f.drawCentered(dst, t.Text, t.X, t.Y, 1.5*t.Scale, t.Alpha, t.Color)
	}

	drawOverlay(dst, st, f)
}

func drawHUD(dst *ebiten.Image, st shield.RenderState, f *fonts) {
	x := 8.0
	put := func(s string, c core.Color) {
		f.drawText(dst, s, x, 6, 1, 1, c)
		w, _ := text.Measure(s, f.face, f.lineHeight)
		x += w + 16
	}

	put(fmt.Sprintf("Score: %d", st.Score), core.ColorBrightGreen)
	put(fmt.Sprintf("High: %d", st.HighScore), core.ColorBrightYellow)
	put(fmt.Sprintf("Hearts: %d", st.Hearts), core.ColorBrightRed)
	if st.Combo >= 2 {
		put(fmt.Sprintf("Combo x%d", st.Combo), core.ColorOrange)
	}
	for _, p := range st.PowerUps {
		if p.Collected {
			put(fmt.Sprintf("%s %ds", p.Kind, int(math.Ceil(p.SecondsLeft))), p.Kind.Color())
		}
	}

	level := fmt.Sprintf("Level %d", st.Level)
	w, _ := text.Measure(level, f.face, f.lineHeight)
	f.drawText(dst, level, st.Viewport.W-w-8, 6, 1, 1, core.ColorBrightBlue)
}

func drawOverlay(dst *ebiten.Image, st shield.RenderState, f *fonts) {
	w, h := st.Viewport.W, st.Viewport.H

	switch st.Phase {
	case shield.PhasePaused:
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dimOverlay, false)
		f.drawCentered(dst, "PAUSED", w/2, h/2-20, 3, 1, core.ColorBrightYellow)
		f.drawCentered(dst, "P resume · B quit", w/2, h/2+20, 1, 1, core.ColorDefault)

	case shield.PhaseGameOver:
		if len(st.Texts) == 0 {
			f.drawCentered(dst, "GAME OVER", w/2, h/2-20, 3, 1, core.ColorBrightRed)
			f.drawCentered(dst, fmt.Sprintf("Score %d  ·  best combo x%d", st.Score, st.MaxCombo), w/2, h/2+20, 1.5, 1, core.ColorDefault)
		}
		f.drawCentered(dst, "R retry · B quit", w/2, h-24, 1, 1, core.ColorGray)
	}
}
