package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Game time starts at the provider's time at construction
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	isPaused        bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a new pausable clock over the given real time source
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{provider: provider}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.provider.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
