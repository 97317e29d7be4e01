package game

import (
	"fmt"
	"math"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/vmath"
)

// Outcome classifies what a catch did to the run
type Outcome uint8

const (
	OutcomeScored   Outcome = iota // points applied, run continues
	OutcomeShielded                // hazard absorbed by the shield
	OutcomeTerminal                // hazard without shield, run must end
	OutcomeMystery                 // run paused for a choice
)

func (o Outcome) String() string {
	switch o {
	case OutcomeScored:
		return "scored"
	case OutcomeShielded:
		return "shielded"
	case OutcomeTerminal:
		return "terminal"
	case OutcomeMystery:
		return "mystery"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Effect is the result of one catch
type Effect struct {
	Kind       catalog.Kind
	Outcome    Outcome
	ScoreDelta int
	Resized    bool    // basket width was re-rolled
	Width      float64 // new basket width when Resized
	Cue        catalog.Cue
}

// Choice is the player's answer to the mystery prompt
type Choice uint8

const (
	ChoiceBurn Choice = iota
	ChoiceShield
	ChoiceGamble
)

func (c Choice) String() string {
	switch c {
	case ChoiceBurn:
		return "burn"
	case ChoiceShield:
		return "shield"
	case ChoiceGamble:
		return "gamble"
	default:
		return fmt.Sprintf("choice(%d)", uint8(c))
	}
}

// ScoreEngine applies catches and mystery choices to run and basket state
// It mutates only what it is handed; effect timers belong to the caller
type ScoreEngine struct {
	rng vmath.Source
}

// NewScoreEngine creates a score engine drawing re-rolls and gambles from rng
func NewScoreEngine(rng vmath.Source) *ScoreEngine {
	return &ScoreEngine{rng: rng}
}

// OnCatch applies a caught kind
func (e *ScoreEngine) OnCatch(kind catalog.Kind, run *RunState, basket *BasketState) Effect {
	eff := Effect{Kind: kind, Outcome: OutcomeScored, Cue: kind.Cue}

	switch kind.Class {
	case catalog.ClassGrowth:
		eff.ScoreDelta = kind.Points * run.Multiplier
		run.Score += eff.ScoreDelta

	case catalog.ClassLiquid:
		eff.ScoreDelta = kind.Points * run.Multiplier
		run.Score += eff.ScoreDelta
		basket.Width = RerollBasketWidth(e.rng)
		eff.Resized = true
		eff.Width = basket.Width

	case catalog.ClassHazard:
		if basket.Shielded {
			// Shield absorbs silently and stays up until its window closes
			eff.Outcome = OutcomeShielded
			eff.Cue = catalog.CueNone
			return eff
		}
		eff.Outcome = OutcomeTerminal
		run.Active = false

	case catalog.ClassMystery:
		eff.Outcome = OutcomeMystery
		run.Active = false
		run.Paused = true
	}

	return eff
}

// RerollBasketWidth returns a width in [100, 600]
func RerollBasketWidth(src vmath.Source) float64 {
	w := vmath.Range(src, constants.BasketBaseWidth, constants.BasketRerollSpan)
	return vmath.Clamp(w, constants.BasketBaseWidth, constants.BasketMaxWidth)
}

// Burn keeps 75% of the score (floored) and doubles the multiplier
func (e *ScoreEngine) Burn(run *RunState) {
	run.Score = int(math.Floor(float64(run.Score) * constants.BurnKeepRatio))
	run.Multiplier = constants.BurnMultiplier
}

// Shield raises the basket shield
func (e *ScoreEngine) Shield(basket *BasketState) {
	basket.Shielded = true
}

// Gamble doubles the score with 60% probability, otherwise halves it (floored)
func (e *ScoreEngine) Gamble(run *RunState) bool {
	return GambleWithDraw(run, e.rng.Float64())
}

// GambleWithDraw resolves a gamble against a fixed draw in [0, 1); returns true on a win
func GambleWithDraw(run *RunState, draw float64) bool {
	if draw < constants.GambleWinChance {
		run.Score *= 2
		return true
	}
	run.Score = run.Score / 2
	return false
}
