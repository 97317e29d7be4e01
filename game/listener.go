package game

import "github.com/lixenwraith/supr-growth/catalog"

// Listener is the UI-side collaborator notified of run changes
// Calls happen on the event loop goroutine and must not block
type Listener interface {
	RunStarted(run RunState)
	Caught(run RunState, eff Effect)
	GrowthChanged(run RunState)
	MysteryPrompt(run RunState)
	MysteryResolved(run RunState, choice Choice)
	EffectChanged(effect EffectName, active bool)
	GameOver(run RunState)
}

// EffectName identifies a timed effect for status display
type EffectName uint8

const (
	EffectBurn EffectName = iota
	EffectShield
)

func (e EffectName) String() string {
	if e == EffectShield {
		return "shield"
	}
	return "burn"
}

// CuePlayer is the audio collaborator; playback is fire-and-forget
type CuePlayer interface {
	Play(cue catalog.Cue)
}

// Recorder persists finished runs
type Recorder interface {
	RecordRun(username string, score int) error
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) RunStarted(RunState)              {}
func (NopListener) Caught(RunState, Effect)          {}
func (NopListener) GrowthChanged(RunState)           {}
func (NopListener) MysteryPrompt(RunState)           {}
func (NopListener) MysteryResolved(RunState, Choice) {}
func (NopListener) EffectChanged(EffectName, bool)   {}
func (NopListener) GameOver(RunState)                {}

type nopCues struct{}

func (nopCues) Play(catalog.Cue) {}

type nopRecorder struct{}

func (nopRecorder) RecordRun(string, int) error { return nil }
