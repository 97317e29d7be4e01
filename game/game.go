// Package game implements the catch loop: spawning, falling items, basket
// collision, scoring, mystery effects and the score-driven difficulty curve
//
// All state is owned by Game and touched only from the goroutine that calls
// its methods. Timers live on an engine.Scheduler; every run has its own
// scheduler generation, so timers of an ended or reset run never fire
package game

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/engine"
	"github.com/lixenwraith/supr-growth/vmath"
)

var (
	ErrNotPaused     = errors.New("no mystery choice pending")
	ErrUnknownChoice = errors.New("unknown mystery choice")
)

// Deps are the collaborators of a Game; nil fields get defaults
type Deps struct {
	Clock     engine.TimeProvider
	Rand      vmath.Source
	Catalog   *catalog.Catalog
	Playfield Playfield
	Listener  Listener
	Cues      CuePlayer
	Recorder  Recorder
}

// Game is the run lifecycle controller
type Game struct {
	pf       Playfield
	clock    *engine.PausableClock
	sched    *engine.Scheduler
	rng      vmath.Source
	catalog  *catalog.Catalog
	score    *ScoreEngine
	spawner  *Spawner
	listener Listener
	cues     CuePlayer
	recorder Recorder

	run    RunState
	basket BasketState
	items  []*Item
	nextID uint64

	burn   EffectWindow
	shield EffectWindow
	pulse  *engine.Task
}

// New creates an idle game; call Start to begin a run
func New(deps Deps) *Game {
	if deps.Clock == nil {
		deps.Clock = engine.NewMonotonicTimeProvider()
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Playfield.Width <= 0 || deps.Playfield.Height <= 0 {
		deps.Playfield = DefaultPlayfield()
	}
	if deps.Listener == nil {
		deps.Listener = NopListener{}
	}
	if deps.Cues == nil {
		deps.Cues = nopCues{}
	}
	if deps.Recorder == nil {
		deps.Recorder = nopRecorder{}
	}

	clock := engine.NewPausableClock(deps.Clock)
	g := &Game{
		pf:       deps.Playfield,
		clock:    clock,
		sched:    engine.NewScheduler(clock.Now()),
		rng:      deps.Rand,
		catalog:  deps.Catalog,
		score:    NewScoreEngine(deps.Rand),
		listener: deps.Listener,
		cues:     deps.Cues,
		recorder: deps.Recorder,
		basket:   newBasketState(deps.Playfield),
	}
	g.spawner = NewSpawner(g.sched, g.catalog, g.rng, g.pf.Width,
		func() time.Duration { return g.run.DropInterval }, g.spawnItem)
	return g
}

// NormalizeName trims a display name, defaulting blanks to "Player"
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return constants.DefaultPlayerName
	}
	return name
}

// Start begins a fresh run, discarding any run in progress without recording it
func (g *Game) Start(name string) RunState {
	g.teardown()
	g.clock.Resume()

	gen := g.sched.Bump()
	g.sched.AdvanceTo(g.clock.Now())

	g.run = newRunState(uuid.NewString(), NormalizeName(name), gen, g.sched.Now())
	g.basket = newBasketState(g.pf)
	g.items = nil

	log.Printf("run %s: started for %q (generation %d)", g.run.ID, g.run.Player, gen)
	g.listener.RunStarted(g.run)

	g.spawner.Start()
	return g.run
}

// Reset restarts with the current player name
func (g *Game) Reset() RunState {
	return g.Start(g.run.Player)
}

// Abandon stops the current run without recording a score
func (g *Game) Abandon() {
	if g.run.ID == "" || g.run.Ended {
		return
	}
	g.halt()
	g.clock.Resume()
	log.Printf("run %s: abandoned at score %d", g.run.ID, g.run.Score)
}

// teardown stops the spawner and every effect timer of the current run
func (g *Game) teardown() {
	g.spawner.Stop()
	g.burn.close()
	g.shield.close()
	g.pulse.Cancel()
	g.pulse = nil
}

// Update advances the event loop to the current game time and returns the
// number of callbacks run
func (g *Game) Update() int {
	return g.sched.AdvanceTo(g.clock.Now())
}

// MoveBasket centres the basket on a pointer position, clamped to the playfield
// Ignored while the run is not active
func (g *Game) MoveBasket(pointerX float64) {
	if !g.run.Active {
		return
	}
	g.basket.X = pointerX - g.basket.Width/2
	g.basket.clampInto(g.pf)
}

// MoveBasketBy shifts the basket horizontally, clamped to the playfield
func (g *Game) MoveBasketBy(dx float64) {
	if !g.run.Active {
		return
	}
	g.basket.X += dx
	g.basket.clampInto(g.pf)
}

// Resolve applies the player's mystery choice and resumes the run
func (g *Game) Resolve(choice Choice) error {
	if !g.run.Paused || g.run.Ended {
		return ErrNotPaused
	}

	switch choice {
	case ChoiceBurn:
		g.score.Burn(&g.run)
		g.burn.open(g.sched, constants.EffectWindow, func() {
			g.run.Multiplier = 1
			g.listener.EffectChanged(EffectBurn, false)
		})
		g.listener.EffectChanged(EffectBurn, true)

	case ChoiceShield:
		g.score.Shield(&g.basket)
		g.shield.open(g.sched, constants.EffectWindow, func() {
			g.basket.Shielded = false
			g.listener.EffectChanged(EffectShield, false)
		})
		g.listener.EffectChanged(EffectShield, true)

	case ChoiceGamble:
		won := g.score.Gamble(&g.run)
		log.Printf("run %s: gamble won=%v score=%d", g.run.ID, won, g.run.Score)

	default:
		return fmt.Errorf("%w: %v", ErrUnknownChoice, choice)
	}

	g.refreshGrowth()

	g.run.Paused = false
	g.run.Active = true
	g.clock.Resume()

	log.Printf("run %s: mystery resolved with %s, score=%d", g.run.ID, choice, g.run.Score)
	g.listener.MysteryResolved(g.run, choice)

	g.spawner.Start()
	return nil
}

func (g *Game) spawnItem(kind catalog.Kind, x float64) {
	g.nextID++
	it := newItem(g.nextID, kind, x, g.sched.Now(), &g.run, g.rng)
	it.poll = g.sched.Every(constants.CollisionPollInterval, func() { g.pollItem(it) })
	it.expiry = g.sched.After(it.FallDuration, func() { g.expireItem(it) })
	g.items = append(g.items, it)
}

func (g *Game) pollItem(it *Item) {
	if it.state != ItemFalling || !g.run.Active {
		return
	}
	if Overlaps(it, g.basket, g.sched.Now(), g.pf) {
		g.catch(it)
	}
}

func (g *Game) expireItem(it *Item) {
	if it.resolve(ItemExpired) {
		g.removeItem(it)
	}
}

func (g *Game) catch(it *Item) {
	if !it.resolve(ItemCaught) {
		return
	}
	g.removeItem(it)

	eff := g.score.OnCatch(it.Kind, &g.run, &g.basket)
	if eff.Resized {
		g.basket.clampInto(g.pf)
	}
	if eff.Cue != catalog.CueNone {
		g.cues.Play(eff.Cue)
	}
	g.listener.Caught(g.run, eff)

	switch eff.Outcome {
	case OutcomeScored:
		g.refreshGrowth()
	case OutcomeTerminal:
		g.endRun()
	case OutcomeMystery:
		g.spawner.Stop()
		g.clock.Pause()
		log.Printf("run %s: mystery prompt at score %d", g.run.ID, g.run.Score)
		g.listener.MysteryPrompt(g.run)
	}
}

// refreshGrowth recomputes difficulty and starts the logo pulse on size change
func (g *Game) refreshGrowth() {
	if !applyDifficulty(&g.run) {
		return
	}
	g.run.Pulsing = true
	g.pulse.Cancel()
	g.pulse = g.sched.After(constants.GrowthPulseDuration, func() {
		g.pulse = nil
		g.run.Pulsing = false
		g.listener.GrowthChanged(g.run)
	})
	g.listener.GrowthChanged(g.run)
}

// endRun finishes the run exactly once and records its score
func (g *Game) endRun() {
	if g.run.Ended {
		return
	}
	g.halt()

	if err := g.recorder.RecordRun(g.run.Player, g.run.Score); err != nil {
		log.Printf("run %s: failed to record score: %v", g.run.ID, err)
	}
	log.Printf("run %s: game over for %q with score %d", g.run.ID, g.run.Player, g.run.Score)
	g.listener.GameOver(g.run)
}

// halt marks the run ended, drops its timers and clears the playfield
func (g *Game) halt() {
	g.run.Ended = true
	g.run.Active = false
	g.run.Paused = false

	g.teardown()
	g.sched.Bump()
	g.basket.Shielded = false
	g.run.Multiplier = 1
	g.run.Pulsing = false
	g.items = nil
}

func (g *Game) removeItem(it *Item) {
	for i, cur := range g.items {
		if cur == it {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

// Run returns a copy of the current run state
func (g *Game) Run() RunState {
	return g.run
}

// Basket returns a copy of the basket state
func (g *Game) Basket() BasketState {
	return g.basket
}

// Playfield returns the logical playfield size
func (g *Game) Playfield() Playfield {
	return g.pf
}

// Now returns the current event loop time
func (g *Game) Now() time.Time {
	return g.sched.Now()
}

// Items returns the live falling items in spawn order
func (g *Game) Items() []*Item {
	out := make([]*Item, len(g.items))
	copy(out, g.items)
	return out
}

// EffectRemaining returns time left on a timed effect, zero when inactive
func (g *Game) EffectRemaining(name EffectName) time.Duration {
	if name == EffectShield {
		return g.shield.Remaining(g.sched.Now())
	}
	return g.burn.Remaining(g.sched.Now())
}

// SpawnTicks returns the number of spawn batches emitted so far
func (g *Game) SpawnTicks() uint64 {
	return g.spawner.Ticks()
}
