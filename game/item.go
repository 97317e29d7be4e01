package game

import (
	"time"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/engine"
	"github.com/lixenwraith/supr-growth/vmath"
)

// ItemState is the falling item lifecycle; Caught and Expired are terminal
type ItemState uint8

const (
	ItemFalling ItemState = iota
	ItemCaught
	ItemExpired
)

func (s ItemState) String() string {
	switch s {
	case ItemFalling:
		return "falling"
	case ItemCaught:
		return "caught"
	case ItemExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Item is one spawned falling instance
type Item struct {
	ID           uint64
	Kind         catalog.Kind
	X            float64
	SpawnedAt    time.Time
	Speed        float64
	FallDuration time.Duration

	state  ItemState
	poll   *engine.Task
	expiry *engine.Task
}

// FallDuration converts a drop interval and speed into the time to cross the playfield
// A speed of 1 crosses in exactly one drop interval
func FallDuration(dropInterval time.Duration, speed float64) time.Duration {
	if speed <= 0 {
		return dropInterval
	}
	return time.Duration(float64(dropInterval) / speed)
}

// newItem rolls the per-item speed jitter and derives the fall duration
func newItem(id uint64, kind catalog.Kind, x float64, now time.Time, run *RunState, src vmath.Source) *Item {
	factor := vmath.Range(src, constants.SpeedJitterMin, constants.SpeedJitterSpan)
	speed := kind.BaseSpeed * factor * run.SpeedMultiplier
	return &Item{
		ID:           id,
		Kind:         kind,
		X:            x,
		SpawnedAt:    now,
		Speed:        speed,
		FallDuration: FallDuration(run.DropInterval, speed),
	}
}

// State returns the lifecycle state
func (it *Item) State() ItemState {
	return it.state
}

// Progress returns the linear fall fraction in [0, 1]
func (it *Item) Progress(now time.Time) float64 {
	if it.FallDuration <= 0 {
		return 1
	}
	return vmath.Clamp(float64(now.Sub(it.SpawnedAt))/float64(it.FallDuration), 0, 1)
}

// Y returns the top edge, moving from 0 to the playfield height
func (it *Item) Y(now time.Time, pf Playfield) float64 {
	return it.Progress(now) * pf.Height
}

// Bounds returns the item rectangle at now
func (it *Item) Bounds(now time.Time, pf Playfield) vmath.Rect {
	return vmath.Rect{
		X: it.X,
		Y: it.Y(now, pf),
		W: constants.ItemSize,
		H: constants.ItemSize,
	}
}

// resolve moves a falling item to a terminal state exactly once and stops its timers
// Returns false when the item was already resolved
func (it *Item) resolve(to ItemState) bool {
	if it.state != ItemFalling {
		return false
	}
	it.state = to
	it.poll.Cancel()
	it.expiry.Cancel()
	return true
}
