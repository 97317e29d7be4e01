package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/engine"
	"github.com/lixenwraith/supr-growth/vmath"
)

var testEpoch = time.Date(2025, 3, 26, 9, 0, 0, 0, time.UTC)

var (
	sproutKind  = catalog.Kind{Symbol: "🌱", Name: "Super Sprout", Points: 50, Weight: 25, BaseSpeed: 1.0, Class: catalog.ClassGrowth, Cue: catalog.CueSeed}
	liquidKind  = catalog.Kind{Symbol: "💧", Name: "Liquid Loan", Points: 5, Weight: 10, BaseSpeed: 1.1, Class: catalog.ClassLiquid, Cue: catalog.CueWater}
	hazardKind  = catalog.Kind{Symbol: "🪱", Name: "Worminator", Points: 0, Weight: 10, BaseSpeed: 2.0, Class: catalog.ClassHazard, Cue: catalog.CueWorm}
	mysteryKind = catalog.Kind{Symbol: "🎁", Name: "Mystery Box", Points: 0, Weight: 5, BaseSpeed: 0.8, Class: catalog.ClassMystery, Cue: catalog.CueMystery}
)

// scriptedSource replays queued draws, then falls back to zero
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0]
	s.ints = s.ints[1:]
	if i >= n {
		i = n - 1
	}
	return i
}

type recordedRun struct {
	name  string
	score int
}

type fakeRecorder struct {
	runs []recordedRun
}

func (r *fakeRecorder) RecordRun(name string, score int) error {
	r.runs = append(r.runs, recordedRun{name, score})
	return nil
}

type fakeCues struct {
	played []catalog.Cue
}

func (c *fakeCues) Play(cue catalog.Cue) {
	c.played = append(c.played, cue)
}

type effectEvent struct {
	name   EffectName
	active bool
}

type fakeListener struct {
	NopListener
	started  int
	prompts  int
	resolved []Choice
	effects  []effectEvent
	growth   int
	gameOver []RunState
}

func (l *fakeListener) RunStarted(RunState)    { l.started++ }
func (l *fakeListener) GrowthChanged(RunState) { l.growth++ }
func (l *fakeListener) MysteryPrompt(RunState) { l.prompts++ }
func (l *fakeListener) MysteryResolved(_ RunState, c Choice) {
	l.resolved = append(l.resolved, c)
}
func (l *fakeListener) EffectChanged(name EffectName, active bool) {
	l.effects = append(l.effects, effectEvent{name, active})
}
func (l *fakeListener) GameOver(run RunState) { l.gameOver = append(l.gameOver, run) }

type harness struct {
	game     *Game
	clock    *engine.FrameClock
	recorder *fakeRecorder
	cues     *fakeCues
	listener *fakeListener
}

// newHarness builds a game over a single-kind catalog and a mock clock
func newHarness(t *testing.T, kinds ...catalog.Kind) *harness {
	t.Helper()
	cat, err := catalog.New(kinds)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	h := &harness{
		clock:    engine.NewFrameClock(testEpoch, constants.FrameUpdateInterval),
		recorder: &fakeRecorder{},
		cues:     &fakeCues{},
		listener: &fakeListener{},
	}
	h.game = New(Deps{
		Clock:    h.clock,
		Rand:     vmath.NewFastRand(99),
		Catalog:  cat,
		Listener: h.listener,
		Cues:     h.cues,
		Recorder: h.recorder,
	})
	return h
}

// step advances real time in frame-sized increments, updating the game each frame
func (h *harness) step(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += constants.FrameUpdateInterval {
		h.clock.Step()
		h.game.Update()
	}
}

// catchNow spawns an item of kind through the normal path and catches it immediately
func (h *harness) catchNow(kind catalog.Kind) *Item {
	g := h.game
	g.spawnItem(kind, g.basket.X)
	it := g.items[len(g.items)-1]
	g.catch(it)
	return it
}

// centerOn moves the basket so it covers the item horizontally
func (h *harness) centerOn(it *Item) {
	h.game.MoveBasket(it.X + constants.ItemSize/2)
}
