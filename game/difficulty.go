package game

import (
	"math"
	"time"

	"github.com/lixenwraith/supr-growth/constants"
)

// Difficulty is the score-derived tuning applied to newly spawned items
type Difficulty struct {
	DropInterval    time.Duration
	SpeedMultiplier float64
	LogoSize        float64
}

// LogoSize grows the logo one unit per 20 points, capped at 300
func LogoSize(score int) float64 {
	if score < 0 {
		score = 0
	}
	return math.Min(constants.LogoMaxSize, constants.LogoBaseSize+float64(score)/constants.LogoPointsPerUnit)
}

// SpeedMultiplier adds 15% fall speed per completed 500-point band, unbounded
func SpeedMultiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	return 1 + float64(score/constants.SpeedBandPoints)*constants.SpeedBandStep
}

// DifficultyFor derives all tuning from the current score
func DifficultyFor(score int) Difficulty {
	return Difficulty{
		DropInterval:    constants.DropInterval,
		SpeedMultiplier: SpeedMultiplier(score),
		LogoSize:        LogoSize(score),
	}
}

// applyDifficulty updates run tuning and reports whether the logo size changed
func applyDifficulty(run *RunState) (logoChanged bool) {
	d := DifficultyFor(run.Score)
	run.SpeedMultiplier = d.SpeedMultiplier
	run.DropInterval = d.DropInterval
	if d.LogoSize != run.LogoSize {
		run.LogoSize = d.LogoSize
		return true
	}
	return false
}
