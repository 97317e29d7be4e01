package game

import (
	"time"

	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/vmath"
)

// Playfield is the logical size of the render surface
type Playfield struct {
	Width, Height float64
}

// DefaultPlayfield returns the standard 800x600 logical playfield
func DefaultPlayfield() Playfield {
	return Playfield{Width: constants.DefaultPlayfieldWidth, Height: constants.DefaultPlayfieldHeight}
}

// RunState is everything one run owns; created at Start, dropped at end or reset
type RunState struct {
	ID         string
	Generation uint64
	Player     string
	StartedAt  time.Time

	Score      int
	Multiplier int

	Active bool // false while paused for the mystery prompt and after the run ends
	Paused bool // awaiting a mystery choice
	Ended  bool

	SpeedMultiplier float64
	DropInterval    time.Duration
	LogoSize        float64
	Pulsing         bool // logo wiggle after a size change
}

// newRunState returns the baseline values every run starts from
func newRunState(id, player string, gen uint64, now time.Time) RunState {
	return RunState{
		ID:              id,
		Generation:      gen,
		Player:          player,
		StartedAt:       now,
		Multiplier:      1,
		Active:          true,
		SpeedMultiplier: 1,
		DropInterval:    constants.DropInterval,
		LogoSize:        constants.LogoBaseSize,
	}
}

// BasketState is the player-controlled catcher at the bottom of the playfield
type BasketState struct {
	Width    float64
	X        float64 // left edge
	Shielded bool
}

func newBasketState(pf Playfield) BasketState {
	w := constants.BasketBaseWidth
	return BasketState{
		Width: w,
		X:     vmath.Clamp((pf.Width-w)/2, 0, pf.Width-w),
	}
}

// Bounds returns the basket rectangle on the bottom band of the playfield
func (b BasketState) Bounds(pf Playfield) vmath.Rect {
	return vmath.Rect{
		X: b.X,
		Y: pf.Height - constants.BasketHeight,
		W: b.Width,
		H: constants.BasketHeight,
	}
}

// clampInto keeps the basket inside the playfield horizontally
func (b *BasketState) clampInto(pf Playfield) {
	maxX := pf.Width - b.Width
	if maxX < 0 {
		maxX = 0
	}
	b.X = vmath.Clamp(b.X, 0, maxX)
}
