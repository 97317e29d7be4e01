// Package audio synthesizes the catch cues and mixes them to the speaker
//
// Playback is fire-and-forget. When the speaker cannot be opened the player
// stays silent and the game runs unchanged
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/supr-growth/catalog"
	"github.com/lixenwraith/supr-growth/constants"
	"github.com/lixenwraith/supr-growth/vmath"
)

// Player mixes cue streamers into a single speaker stream
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	noise       vmath.Source
	initialized bool
	played      uint64
}

// NewPlayer creates an uninitialized player; Play is a no-op until Initialize succeeds
func NewPlayer(cfg Config, noise vmath.Source) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	if noise == nil {
		noise = vmath.NewFastRand(1)
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		noise: noise,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker ready at %d Hz", p.cfg.SampleRate)
	return nil
}

// Close stops all sounds
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}

// Play queues cue on the mixer unless muted
func (p *Player) Play(cue catalog.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.cfg.Muted {
		return
	}
	s := CueStreamer(cue, p.cfg, p.noise)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Played returns the number of cues queued since creation
func (p *Player) Played() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// SetMuted sets the mute flag; game state is never touched
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Muted = muted
}

// ToggleMuted flips the mute flag and returns the new value
func (p *Player) ToggleMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Muted = !p.cfg.Muted
	return p.cfg.Muted
}

// Muted reports the mute flag
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Muted
}

// Ready reports whether the speaker is open
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
