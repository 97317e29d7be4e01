// Package render draws game frames onto a tcell screen
//
// The logical 800x600 playfield is scaled to whatever cell grid the terminal
// offers. Rendering reads a Frame snapshot and never mutates game state
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/game"
	"github.com/lixenwraith/supr-growth/leaderboard"
)

// View selects which screen a frame shows
type View int

const (
	ViewSplash View = iota
	ViewPlaying
	ViewMystery
	ViewGameOver
)

const (
	barWidth       = 20
	pulsePeriod    = 125 * time.Millisecond
	leaderboardCol = 28
)

// Frame is everything needed to draw one screen
type Frame struct {
	View       View
	Run        game.RunState
	Basket     game.BasketState
	Items      []*game.Item
	Now        time.Time
	BurnLeft   time.Duration
	ShieldLeft time.Duration
	Muted      bool
	NameInput  string
	AllTime    []leaderboard.Entry
	Daily      leaderboard.Daily
	Message    string // transient line on the hint row
}

// Renderer owns the screen and the active theme
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	pf     game.Playfield
	vp     Viewport
}

// NewRenderer creates a renderer sized to screen
func NewRenderer(screen tcell.Screen, pf game.Playfield, theme Theme) *Renderer {
	r := &Renderer{screen: screen, theme: theme, pf: pf}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.vp = NewViewport(r.pf, w, h)
}

// Viewport returns the current playfield mapping
func (r *Renderer) Viewport() Viewport {
	return r.vp
}

// Theme returns the active theme
func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetTheme switches the palette for subsequent frames
func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
}

// Draw renders f and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.SetStyle(r.theme.base())
	r.screen.Clear()

	switch f.View {
	case ViewSplash:
		r.drawSplash(f)
	case ViewPlaying:
		r.drawStatus(f)
		r.drawPlayfield(f)
	case ViewMystery:
		r.drawStatus(f)
		r.drawPlayfield(f)
		r.drawMysteryPopup()
	case ViewGameOver:
		r.drawGameOver(f)
	}
	r.drawHints(f)

	r.screen.Show()
}

// drawText writes s from (x, y) and returns the column after the last cell
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= w {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
	return x
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-runewidth.StringWidth(s))/2, y, s, style)
}

// drawBar draws a fixed-width fill gauge for remaining/total
func (r *Renderer) drawBar(x, y int, label string, remaining, total time.Duration, c tcell.Color) int {
	x = r.drawText(x, y, label+" ", r.theme.fg(c).Bold(true))
	filled := 0
	if total > 0 {
		filled = int(float64(barWidth) * float64(remaining) / float64(total))
	}
	filled = min(max(filled, 0), barWidth)
	for i := 0; i < barWidth; i++ {
		style := r.theme.base().Background(r.theme.BarEmpty)
		if i < filled {
			style = r.theme.base().Background(c)
		}
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
	x += barWidth
	secs := int((remaining + time.Second - 1) / time.Second)
	return r.drawText(x, y, fmt.Sprintf(" %2ds  ", secs), r.theme.fg(c))
}

func (r *Renderer) drawStatus(f Frame) {
	run := f.Run

	logoStyle := r.theme.fg(r.theme.Accent).Bold(true)
	logo := "🌱 SUPR GROWTH"
	if run.Pulsing && (f.Now.Sub(run.StartedAt)/pulsePeriod)%2 == 0 {
		logoStyle = logoStyle.Reverse(true)
		logo = "🌱 SUPR GROWTH ✦"
	}
	x := r.drawText(0, 0, logo, logoStyle)
	x = r.drawText(x+2, 0, fmt.Sprintf("Score %d", run.Score), r.theme.fg(r.theme.Accent))
	if run.Multiplier > 1 {
		x = r.drawText(x+1, 0, fmt.Sprintf("x%d", run.Multiplier), r.theme.fg(r.theme.Burn).Bold(true))
	}
	x = r.drawText(x+2, 0, fmt.Sprintf("Logo %.0f/%.0f", run.LogoSize, constants.LogoMaxSize), r.theme.fg(r.theme.Text))
	x = r.drawText(x+2, 0, fmt.Sprintf("Speed %.2fx", run.SpeedMultiplier), r.theme.fg(r.theme.Dim))
	x = r.drawText(x+2, 0, run.Player, r.theme.fg(r.theme.Text))
	r.drawText(x+2, 0, soundIcon(f.Muted), r.theme.base())

	x = 0
	if f.BurnLeft > 0 {
		x = r.drawBar(x, 1, "BURN x2", f.BurnLeft, constants.EffectWindow, r.theme.Burn)
	}
	if f.ShieldLeft > 0 {
		r.drawBar(x, 1, "SHIELD", f.ShieldLeft, constants.EffectWindow, r.theme.Shield)
	}
}

func soundIcon(muted bool) string {
	if muted {
		return "🔇"
	}
	return "🔊"
}

func (r *Renderer) drawPlayfield(f Frame) {
	vp := r.vp
	ground := vp.Y + vp.Rows - 1

	for _, it := range f.Items {
		b := it.Bounds(f.Now, r.pf)
		col := vp.Col(b.X + b.W/2)
		row := vp.Row(b.Y + b.H/2)
		// Items sharing the basket row are drawn over by the basket
		if row >= ground {
			row = ground - 1
		}
		style := r.theme.base()
		if it.Kind.Symbol == "🪱" {
			style = style.Foreground(r.theme.Danger)
		}
		r.drawText(col, row, it.Kind.Symbol, style)
	}

	bb := f.Basket.Bounds(r.pf)
	left := vp.Col(bb.X)
	right := max(vp.Col(bb.Right()-1), left)
	style := r.theme.fg(r.theme.Basket)
	fill := '▀'
	if f.Basket.Shielded {
		style = r.theme.fg(r.theme.Shield).Bold(true)
		fill = '█'
	}
	for c := left; c <= right; c++ {
		r.screen.SetContent(c, ground, fill, nil, style)
	}
	if f.Basket.Shielded && right-left >= 2 {
		r.drawText(left+(right-left)/2-1, ground-1, "🛡", style)
	}
}

var mysteryLines = []string{
	"🎁  MYSTERY BOX  🎁",
	"",
	"[1] Burn debt   keep 75%, double points for 30s",
	"[2] Shield      worms are harmless for 30s",
	"[3] Gamble      60%: double score, else half",
}

func (r *Renderer) drawMysteryPopup() {
	w, h := r.screen.Size()
	boxW := 0
	for _, l := range mysteryLines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 4
	boxH := len(mysteryLines) + 2
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	style := r.theme.base().Background(r.theme.PopupBg)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, l := range mysteryLines {
		st := style
		if i == 0 {
			st = st.Foreground(r.theme.Accent).Bold(true)
		}
		r.drawText(x0+2, y0+1+i, l, st)
	}
}

func (r *Renderer) drawLeaderboard(x, y int, title string, entries []leaderboard.Entry) {
	r.drawText(x, y, title, r.theme.fg(r.theme.Accent).Bold(true))
	if len(entries) == 0 {
		r.drawText(x, y+1, "no scores yet", r.theme.fg(r.theme.Dim))
		return
	}
	for i, e := range entries {
		r.drawText(x, y+1+i, fmt.Sprintf("%2d. %-14s %6d", i+1, truncate(e.Username, 14), e.Score), r.theme.base())
	}
}

func truncate(s string, n int) string {
	if runewidth.StringWidth(s) <= n {
		return s
	}
	return runewidth.Truncate(s, n, "…")
}

func (r *Renderer) drawBoards(y int, f Frame) {
	w, _ := r.screen.Size()
	left := max((w-2*leaderboardCol)/2, 0)
	r.drawLeaderboard(left, y, "ALL-TIME TOP 10", f.AllTime)
	r.drawLeaderboard(left+leaderboardCol+2, y, "TODAY "+f.Daily.Date, f.Daily.Scores)
}

func (r *Renderer) drawSplash(f Frame) {
	r.drawCentered(1, "🌱 SUPR GROWTH 🌱", r.theme.fg(r.theme.Accent).Bold(true))
	r.drawCentered(2, "catch the crops, dodge the worms", r.theme.fg(r.theme.Dim))

	prompt := "Your name: " + f.NameInput + "▏"
	r.drawCentered(4, prompt, r.theme.base().Bold(true))
	r.drawCentered(5, "press Enter to start", r.theme.fg(r.theme.Dim))

	r.drawBoards(7, f)
}

func (r *Renderer) drawGameOver(f Frame) {
	r.drawCentered(1, "GAME OVER", r.theme.fg(r.theme.Danger).Bold(true))
	r.drawCentered(3, fmt.Sprintf("%s scored %d", f.Run.Player, f.Run.Score), r.theme.fg(r.theme.Accent))
	r.drawCentered(4, fmt.Sprintf("logo grew to %.0f", f.Run.LogoSize), r.theme.fg(r.theme.Dim))

	r.drawBoards(6, f)
}

// hintsFor lists the key help for a view; clearing is offered only when there is something to clear
func hintsFor(f Frame) []string {
	var hints []string
	switch f.View {
	case ViewSplash:
		hints = []string{"Enter start", "F2 sound", "F3 theme"}
		if len(f.AllTime) > 0 {
			hints = append(hints, "F4 clear all-time")
		}
		hints = append(hints, "Esc quit")
	case ViewPlaying:
		hints = []string{"mouse/←→ move", "m sound", "t theme", "q quit"}
	case ViewMystery:
		hints = []string{"1/b burn", "2/s shield", "3/g gamble"}
	case ViewGameOver:
		hints = []string{"Enter/r play again", "n new player", "m sound", "t theme"}
		if len(f.AllTime) > 0 {
			hints = append(hints, "c clear all-time")
		}
		hints = append(hints, "q quit")
	}
	return hints
}

func (r *Renderer) drawHints(f Frame) {
	_, h := r.screen.Size()
	line := strings.Join(hintsFor(f), "  ·  ")
	if f.Message != "" {
		line = f.Message + "   " + line
	}
	r.drawText(0, h-1, line, r.theme.fg(r.theme.Dim))
}
