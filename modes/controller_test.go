package modes

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/engine"
	"github.com/lixenwraith/supr-growth/game"
	"github.com/lixenwraith/supr-growth/leaderboard"
	"github.com/lixenwraith/supr-growth/render"
	"github.com/lixenwraith/supr-growth/vmath"
)

var (
	growthKind  = catalog.Kind{Symbol: "🌽", Name: "Corn King", Points: 20, Weight: 1, BaseSpeed: 1.2, Class: catalog.ClassGrowth, Cue: catalog.CueCorn}
	hazardKind  = catalog.Kind{Symbol: "🪱", Name: "Worminator", Weight: 1, BaseSpeed: 2.0, Class: catalog.ClassHazard, Cue: catalog.CueWorm}
	mysteryKind = catalog.Kind{Symbol: "🎁", Name: "Mystery Box", Weight: 1, BaseSpeed: 0.8, Class: catalog.ClassMystery, Cue: catalog.CueMystery}
)

type fakeSound struct{ muted bool }

func (s *fakeSound) ToggleMuted() bool { s.muted = !s.muted; return s.muted }
func (s *fakeSound) Muted() bool       { return s.muted }

type fixture struct {
	ctrl   *Controller
	game   *game.Game
	clock  *engine.FrameClock
	store  *leaderboard.Store
	sound  *fakeSound
	screen tcell.SimulationScreen
}

func newFixture(t *testing.T, kind catalog.Kind) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cat, err := catalog.New([]catalog.Kind{kind})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}

	f := &fixture{
		clock: engine.NewFrameClock(time.Date(2025, 3, 26, 9, 0, 0, 0, time.UTC), constants.FrameUpdateInterval),
		store: leaderboard.Open(leaderboard.NewMemKV(), nil),
		sound: &fakeSound{},
	}
	f.screen = screen
	r := render.NewRenderer(screen, game.DefaultPlayfield(), render.ThemeByName("dark"))
	f.ctrl = NewController(f.store, f.sound, r, "")
	f.game = game.New(game.Deps{
		Clock:    f.clock,
		Rand:     vmath.NewFastRand(7),
		Catalog:  cat,
		Listener: f.ctrl,
		Recorder: f.store,
	})
	f.ctrl.Bind(f.game)
	return f
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.ctrl.HandleEvent(runeKey(r))
	}
}

// runUntil ticks frames until the controller reaches mode or the budget runs out
func (f *fixture) runUntil(t *testing.T, mode Mode, budget time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed < budget; elapsed += constants.FrameUpdateInterval {
		if f.ctrl.Mode() == mode {
			return
		}
		f.clock.Step()
		f.ctrl.Tick()
	}
	if f.ctrl.Mode() != mode {
		t.Fatalf("Mode %s not reached within %v, still %s", mode, budget, f.ctrl.Mode())
	}
}

func TestSplashNameEntry(t *testing.T) {
	f := newFixture(t, growthKind)
	if f.ctrl.Mode() != ModeSplash {
		t.Fatalf("Expected splash, got %s", f.ctrl.Mode())
	}

	f.typeText("Adam")
	f.ctrl.HandleEvent(key(tcell.KeyBackspace2))
	if f.ctrl.Name() != "Ada" {
		t.Errorf("Expected Ada, got %q", f.ctrl.Name())
	}

	// Plain m and t are letters here, not toggles
	f.typeText("mt")
	if f.sound.muted || f.ctrl.Name() != "Adamt" {
		t.Errorf("Letters should go to the name: %q muted=%v", f.ctrl.Name(), f.sound.muted)
	}

	f.typeText("abcdefghijklmnopqrstuvwxyz")
	if n := len([]rune(f.ctrl.Name())); n != maxNameLen {
		t.Errorf("Name should cap at %d runes, got %d", maxNameLen, n)
	}

	if !f.ctrl.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatal("Enter should not exit")
	}
	if f.ctrl.Mode() != ModePlaying {
		t.Fatalf("Enter should start the run, mode %s", f.ctrl.Mode())
	}
	if f.game.Run().Player != f.ctrl.Name() {
		t.Errorf("Run player %q, want %q", f.game.Run().Player, f.ctrl.Name())
	}
}

func TestBlankNameDefaults(t *testing.T) {
	f := newFixture(t, growthKind)
	f.typeText("   ")
	f.ctrl.HandleEvent(key(tcell.KeyEnter))
	if got := f.game.Run().Player; got != "Player" {
		t.Errorf("Expected Player, got %q", got)
	}
}

func TestBasketInput(t *testing.T) {
	f := newFixture(t, growthKind)
	f.ctrl.HandleEvent(key(tcell.KeyEnter))

	f.ctrl.HandleEvent(tcell.NewEventMouse(0, 10, tcell.ButtonNone, tcell.ModNone))
	if x := f.game.Basket().X; x != 0 {
		t.Errorf("Mouse at left edge should clamp basket to 0, got %v", x)
	}

	f.ctrl.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	if x := f.game.Basket().X; x != 355 {
		t.Errorf("Mouse at column 40 should centre basket on 405, got X=%v", x)
	}

	f.ctrl.HandleEvent(key(tcell.KeyLeft))
	if x := f.game.Basket().X; x != 330 {
		t.Errorf("Left arrow should move 25, got X=%v", x)
	}
	f.ctrl.HandleEvent(runeKey('l'))
	f.ctrl.HandleEvent(runeKey('d'))
	if x := f.game.Basket().X; x != 380 {
		t.Errorf("Two right moves should reach 380, got X=%v", x)
	}
}

func TestMysteryFlow(t *testing.T) {
	f := newFixture(t, mysteryKind)
	f.ctrl.HandleEvent(key(tcell.KeyEnter))
	f.runUntil(t, ModeMystery, time.Minute)

	if !f.game.Run().Paused {
		t.Fatal("Game should be paused on the mystery screen")
	}

	// Unrelated keys leave the prompt open
	f.ctrl.HandleEvent(runeKey('x'))
	f.ctrl.HandleEvent(key(tcell.KeyLeft))
	if f.ctrl.Mode() != ModeMystery {
		t.Fatal("Prompt closed without a choice")
	}

	f.ctrl.HandleEvent(runeKey('2'))
	if f.ctrl.Mode() != ModePlaying {
		t.Fatalf("Choice should resume play, mode %s", f.ctrl.Mode())
	}
	if !f.game.Basket().Shielded {
		t.Error("Shield choice should raise the shield")
	}
	if fr := f.ctrl.Frame(); fr.ShieldLeft != constants.EffectWindow || fr.View != render.ViewPlaying {
		t.Errorf("Unexpected frame after shield: left=%v view=%v", fr.ShieldLeft, fr.View)
	}
}

func TestGameOverFlow(t *testing.T) {
	f := newFixture(t, hazardKind)
	f.typeText("Wormy")
	f.ctrl.HandleEvent(key(tcell.KeyEnter))
	f.runUntil(t, ModeGameOver, time.Minute)

	all := f.store.AllTime()
	if len(all) != 1 || all[0].Username != "Wormy" {
		t.Fatalf("Expected one recorded run for Wormy, got %+v", all)
	}
	fr := f.ctrl.Frame()
	if fr.View != render.ViewGameOver || len(fr.AllTime) != 1 || len(fr.Daily.Scores) != 1 {
		t.Errorf("Game over frame should carry both tables: %+v", fr)
	}

	f.ctrl.HandleEvent(runeKey('c'))
	if len(f.store.AllTime()) != 0 {
		t.Error("c should clear the all-time table")
	}
	if len(f.store.Daily().Scores) != 1 {
		t.Error("Clearing all-time must keep the daily table")
	}

	f.ctrl.HandleEvent(runeKey('r'))
	if f.ctrl.Mode() != ModePlaying || f.game.Run().Player != "Wormy" || f.game.Run().Score != 0 {
		t.Errorf("r should restart for the same player: mode=%s run=%+v", f.ctrl.Mode(), f.game.Run())
	}
}

func TestNewPlayerReturnsToSplash(t *testing.T) {
	f := newFixture(t, hazardKind)
	f.ctrl.HandleEvent(key(tcell.KeyEnter))
	f.runUntil(t, ModeGameOver, time.Minute)

	f.ctrl.HandleEvent(runeKey('n'))
	if f.ctrl.Mode() != ModeSplash {
		t.Fatalf("n should return to splash, got %s", f.ctrl.Mode())
	}
}

func TestClearIgnoredDuringPlay(t *testing.T) {
	f := newFixture(t, growthKind)
	f.store.RecordRun("old", 100)
	f.ctrl.HandleEvent(key(tcell.KeyEnter))

	f.ctrl.HandleEvent(key(tcell.KeyF4))
	if len(f.store.AllTime()) != 1 {
		t.Error("All-time table cleared during play")
	}
}

func TestToggles(t *testing.T) {
	f := newFixture(t, growthKind)

	f.ctrl.HandleEvent(key(tcell.KeyF2))
	if !f.sound.muted {
		t.Error("F2 should mute on the splash screen")
	}

	f.ctrl.HandleEvent(key(tcell.KeyEnter))
	score := f.game.Run()
	f.ctrl.HandleEvent(runeKey('m'))
	if f.sound.muted {
		t.Error("m should unmute during play")
	}

	before := f.ctrl.renderer.Theme().Name
	f.ctrl.HandleEvent(runeKey('t'))
	if f.ctrl.renderer.Theme().Name == before {
		t.Error("t should switch theme")
	}
	if f.game.Run() != score {
		t.Error("Toggles must not touch game state")
	}
}

func TestQuitAbandonsRun(t *testing.T) {
	f := newFixture(t, growthKind)
	f.ctrl.HandleEvent(key(tcell.KeyEnter))

	if f.ctrl.HandleEvent(runeKey('q')) {
		t.Fatal("q should exit")
	}
	if !f.game.Run().Ended {
		t.Error("Quit should end the run")
	}
	if len(f.store.AllTime()) != 0 {
		t.Error("Quitting must not record a score")
	}
}

func TestCtrlCExitsEverywhere(t *testing.T) {
	f := newFixture(t, growthKind)
	if f.ctrl.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C should exit from splash")
	}
}

func TestTickDrawsCurrentMode(t *testing.T) {
	f := newFixture(t, growthKind)
	f.ctrl.Tick()
	mainc, _, _, _ := f.screen.GetContent(0, 23)
	if mainc != 'E' {
		t.Errorf("Splash hint row should start with Enter, got %q", mainc)
	}
}
