package constants

import "time"

// Score and difficulty curve
const (
	// SpeedBandPoints is the score band width for each fall speed step
	SpeedBandPoints = 500

	// SpeedBandStep is the speed multiplier increase per band
	SpeedBandStep = 0.15

	// LogoBaseSize is the growth logo size at score zero
	LogoBaseSize = 100.0

	// LogoMaxSize caps the growth logo
	LogoMaxSize = 300.0

	// LogoPointsPerUnit is the score needed for one unit of logo growth
	LogoPointsPerUnit = 20.0

	// GrowthPulseDuration is how long the logo wiggles after a size change
	GrowthPulseDuration = 500 * time.Millisecond
)

// Mystery box outcomes
const (
	// EffectWindow is the lifetime of burn multiplier and shield effects
	EffectWindow = 30 * time.Second

	// BurnKeepRatio is the fraction of score kept by a burn
	BurnKeepRatio = 0.75

	// BurnMultiplier applies to catches while the burn window is open
	BurnMultiplier = 2

	// GambleWinChance is the probability the gamble doubles the score
	GambleWinChance = 0.6
)

// Leaderboard
const (
	// LeaderboardSize is the number of entries kept per list
	LeaderboardSize = 10

	// DefaultPlayerName replaces blank display names
	DefaultPlayerName = "Player"
)
