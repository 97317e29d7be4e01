package game

import (
	"time"

	"github.com/lixenwraith/supr-growth/engine"
)

// EffectWindow is a time-bounded modifier that reverts when its task fires
// Re-opening an open window restarts it
type EffectWindow struct {
	task  *engine.Task
	until time.Time
}

// open schedules revert after d, replacing any pending revert
func (w *EffectWindow) open(sched *engine.Scheduler, d time.Duration, revert func()) {
	w.task.Cancel()
	w.until = sched.Now().Add(d)
	w.task = sched.After(d, func() {
		w.task = nil
		w.until = time.Time{}
		revert()
	})
}

// close drops the window without running revert
func (w *EffectWindow) close() {
	w.task.Cancel()
	w.task = nil
	w.until = time.Time{}
}

// Active reports whether the window is open
func (w *EffectWindow) Active() bool {
	return w.task.Active()
}

// Remaining returns time left in the window at now, zero when closed
func (w *EffectWindow) Remaining(now time.Time) time.Duration {
	if !w.Active() {
		return 0
	}
	if d := w.until.Sub(now); d > 0 {
		return d
	}
	return 0
}
