package game

import (
	"time"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/engine"
	"github.com/lixenwraith/supr-growth/vmath"
)

// SpawnFunc receives each spawned kind with its horizontal offset
type SpawnFunc func(kind catalog.Kind, x float64)

// Spawner drives the recurring spawn tick on the scheduler
// At most one tick is pending at any time; Stop cancels it synchronously
type Spawner struct {
	sched   *engine.Scheduler
	catalog *catalog.Catalog
	rng     vmath.Source
	width   float64

	dropInterval func() time.Duration
	emit         SpawnFunc

	running bool
	next    *engine.Task
	ticks   uint64
}

// NewSpawner creates a stopped spawner for a playfield of the given width
func NewSpawner(sched *engine.Scheduler, cat *catalog.Catalog, rng vmath.Source, width float64, dropInterval func() time.Duration, emit SpawnFunc) *Spawner {
	return &Spawner{
		sched:        sched,
		catalog:      cat,
		rng:          rng,
		width:        width,
		dropInterval: dropInterval,
		emit:         emit,
	}
}

// Start emits a batch immediately and begins the tick chain; no-op while running
func (s *Spawner) Start() {
	if s.running {
		return
	}
	s.running = true
	s.tick()
}

// Stop cancels the pending tick; no further batches are emitted until Start
func (s *Spawner) Stop() {
	s.running = false
	s.next.Cancel()
	s.next = nil
}

// Running reports whether the tick chain is live
func (s *Spawner) Running() bool {
	return s.running
}

// Ticks returns the number of batches emitted
func (s *Spawner) Ticks() uint64 {
	return s.ticks
}

func (s *Spawner) tick() {
	if !s.running {
		return
	}
	s.ticks++

	n := constants.SpawnBatchMin + s.rng.Intn(constants.SpawnBatchSpread)
	for i := 0; i < n; i++ {
		kind := s.catalog.PickWeighted(s.rng)
		s.emit(kind, s.spawnX())
		// emit may end or pause the run
		if !s.running {
			return
		}
	}

	s.next = s.sched.After(s.NextDelay(), s.tick)
}

// NextDelay draws the gap to the next tick from [500ms, 500ms + dropInterval)
func (s *Spawner) NextDelay() time.Duration {
	jitter := s.rng.Float64() * float64(s.dropInterval())
	return constants.SpawnBaseDelay + time.Duration(jitter)
}

func (s *Spawner) spawnX() float64 {
	span := s.width - constants.ItemSize
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}
