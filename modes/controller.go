// Package modes owns the screen state machine and routes terminal input to the game
package modes

import (
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/supr-growth/game"
	"github.com/lixenwraith/supr-growth/leaderboard"
	"github.com/lixenwraith/supr-growth/render"
)

// Mode is the active screen
type Mode int

const (
	ModeSplash Mode = iota
	ModePlaying
	ModeMystery
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModePlaying:
		return "playing"
	case ModeMystery:
		return "mystery"
	case ModeGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

const (
	maxNameLen   = 16
	keyboardStep = 25.0 // logical units per arrow press
	messageTTL   = 2 * time.Second
)

// Sound is the mute control of the audio collaborator
type Sound interface {
	ToggleMuted() bool
	Muted() bool
}

// Scores is the leaderboard view and reset used by the screens
type Scores interface {
	AllTime() []leaderboard.Entry
	Daily() leaderboard.Daily
	ResetAllTime() error
}

// Controller drives screens from input and game events
// It implements game.Listener; all calls happen on the main loop goroutine
type Controller struct {
	game.NopListener

	game     *game.Game
	scores   Scores
	sound    Sound
	renderer *render.Renderer

	mode      Mode
	name      []rune
	message   string
	messageAt time.Time
}

// NewController creates a controller on the splash screen
// Bind must be called with the game before events are handled
func NewController(scores Scores, sound Sound, renderer *render.Renderer, player string) *Controller {
	c := &Controller{
		scores:   scores,
		sound:    sound,
		renderer: renderer,
		mode:     ModeSplash,
	}
	c.name = []rune(player)
	if len(c.name) > maxNameLen {
		c.name = c.name[:maxNameLen]
	}
	return c
}

// Bind attaches the game driven by this controller
func (c *Controller) Bind(g *game.Game) {
	c.game = g
}

// Mode returns the active screen
func (c *Controller) Mode() Mode {
	return c.mode
}

// Name returns the name being entered on the splash screen
func (c *Controller) Name() string {
	return string(c.name)
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	case *tcell.EventResize:
		c.renderer.Resize()
	}
	return true
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		c.quit()
		return false
	}

	// Function keys work on every screen, including while typing a name
	switch ev.Key() {
	case tcell.KeyF2:
		c.toggleSound()
		return true
	case tcell.KeyF3:
		c.toggleTheme()
		return true
	case tcell.KeyF4:
		c.clearAllTime()
		return true
	}

	switch c.mode {
	case ModeSplash:
		return c.handleSplash(ev)
	case ModePlaying:
		return c.handlePlaying(ev)
	case ModeMystery:
		c.handleMystery(ev)
	case ModeGameOver:
		return c.handleGameOver(ev)
	}
	return true
}

func (c *Controller) handleSplash(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		c.game.Start(string(c.name))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.name) > 0 {
			c.name = c.name[:len(c.name)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsPrint(r) && len(c.name) < maxNameLen {
			c.name = append(c.name, r)
		}
	}
	return true
}

func (c *Controller) handlePlaying(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.quit()
		return false
	case tcell.KeyLeft:
		c.game.MoveBasketBy(-keyboardStep)
	case tcell.KeyRight:
		c.game.MoveBasketBy(keyboardStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			c.game.MoveBasketBy(-keyboardStep)
		case 'l', 'd':
			c.game.MoveBasketBy(keyboardStep)
		case 'm':
			c.toggleSound()
		case 't':
			c.toggleTheme()
		case 'q':
			c.quit()
			return false
		}
	}
	return true
}

func (c *Controller) handleMystery(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	var choice game.Choice
	switch ev.Rune() {
	case '1', 'b':
		choice = game.ChoiceBurn
	case '2', 's':
		choice = game.ChoiceShield
	case '3', 'g':
		choice = game.ChoiceGamble
	case 'm':
		c.toggleSound()
		return
	case 't':
		c.toggleTheme()
		return
	default:
		return
	}
	if err := c.game.Resolve(choice); err != nil {
		log.Printf("modes: resolve %s: %v", choice, err)
	}
}

func (c *Controller) handleGameOver(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		c.game.Reset()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r':
			c.game.Reset()
		case 'n':
			c.mode = ModeSplash
		case 'c':
			c.clearAllTime()
		case 'm':
			c.toggleSound()
		case 't':
			c.toggleTheme()
		case 'q':
			return false
		}
	}
	return true
}

func (c *Controller) handleMouse(ev *tcell.EventMouse) {
	if c.mode != ModePlaying {
		return
	}
	col, _ := ev.Position()
	c.game.MoveBasket(c.renderer.Viewport().LogicalX(col))
}

// quit abandons a run in progress without recording it
func (c *Controller) quit() {
	if c.game != nil && (c.mode == ModePlaying || c.mode == ModeMystery) {
		c.game.Abandon()
	}
}

func (c *Controller) toggleSound() {
	if c.sound == nil {
		return
	}
	if c.sound.ToggleMuted() {
		c.flash("sound off")
	} else {
		c.flash("sound on")
	}
}

func (c *Controller) toggleTheme() {
	t := c.renderer.Theme().Toggle()
	c.renderer.SetTheme(t)
	c.flash(t.Name + " theme")
}

// clearAllTime is offered only on the splash and game-over screens and only when non-empty
func (c *Controller) clearAllTime() {
	if c.mode != ModeSplash && c.mode != ModeGameOver {
		return
	}
	if len(c.scores.AllTime()) == 0 {
		return
	}
	if err := c.scores.ResetAllTime(); err != nil {
		log.Printf("modes: reset all-time leaderboard: %v", err)
		c.flash("could not save leaderboard")
		return
	}
	c.flash("all-time leaderboard cleared")
}

func (c *Controller) flash(msg string) {
	c.message = msg
	c.messageAt = time.Now()
}

// RunStarted implements game.Listener
func (c *Controller) RunStarted(game.RunState) {
	c.mode = ModePlaying
	c.message = ""
}

// MysteryPrompt implements game.Listener
func (c *Controller) MysteryPrompt(game.RunState) {
	c.mode = ModeMystery
}

// MysteryResolved implements game.Listener
func (c *Controller) MysteryResolved(run game.RunState, choice game.Choice) {
	c.mode = ModePlaying
	c.flash(fmt.Sprintf("%s: score %d", choice, run.Score))
}

// GameOver implements game.Listener
func (c *Controller) GameOver(run game.RunState) {
	c.mode = ModeGameOver
	c.flash(fmt.Sprintf("%s scored %d", run.Player, run.Score))
}

func viewFor(m Mode) render.View {
	switch m {
	case ModePlaying:
		return render.ViewPlaying
	case ModeMystery:
		return render.ViewMystery
	case ModeGameOver:
		return render.ViewGameOver
	default:
		return render.ViewSplash
	}
}

// Frame snapshots the current screen for the renderer
func (c *Controller) Frame() render.Frame {
	f := render.Frame{
		View:      viewFor(c.mode),
		NameInput: string(c.name),
	}
	if c.sound != nil {
		f.Muted = c.sound.Muted()
	}
	if c.message != "" && time.Since(c.messageAt) < messageTTL {
		f.Message = c.message
	}

	switch c.mode {
	case ModeSplash, ModeGameOver:
		f.AllTime = c.scores.AllTime()
		f.Daily = c.scores.Daily()
	}
	if c.game != nil {
		f.Run = c.game.Run()
		f.Basket = c.game.Basket()
		f.Items = c.game.Items()
		f.Now = c.game.Now()
		f.BurnLeft = c.game.EffectRemaining(game.EffectBurn)
		f.ShieldLeft = c.game.EffectRemaining(game.EffectShield)
	}
	return f
}

// Tick advances the game to the current time and draws a frame
func (c *Controller) Tick() {
	if c.game != nil && c.mode == ModePlaying {
		c.game.Update()
	}
	c.renderer.Draw(c.Frame())
}
