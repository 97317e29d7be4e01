package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestFrameClock(t *testing.T) {
	origin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFrameClock(origin, 16*time.Millisecond)

	if now := clock.Now(); !now.Equal(origin) {
		t.Errorf("Expected clock to start at %v, got %v", origin, now)
	}

	for i := 0; i < 3; i++ {
		clock.Step()
	}
	if got := clock.Now(); !got.Equal(origin.Add(48 * time.Millisecond)) {
		t.Errorf("Expected 3 frames to be 48ms, got %v", got.Sub(origin))
	}
	if f := clock.Frames(); f != 3 {
		t.Errorf("Expected 3 frames, got %d", f)
	}

	if got := clock.Advance(-time.Second); !got.Equal(origin.Add(48 * time.Millisecond)) {
		t.Errorf("Negative advance should not rewind, got %v", got.Sub(origin))
	}
	clock.Advance(time.Hour + 2*time.Millisecond)
	if f := clock.Frames(); f != 225003 {
		t.Errorf("Expected partial frames to round down to 225003, got %d", f)
	}
}

func TestFrameClockZeroFrame(t *testing.T) {
	clock := NewFrameClock(time.Unix(0, 0), 0)
	clock.Step()
	if clock.Frames() != 0 || !clock.Now().Equal(time.Unix(0, 0)) {
		t.Error("Zero-length frames should never move the clock")
	}
}

func TestPausableClockFreezesDuringPause(t *testing.T) {
	start := time.Date(2025, 3, 26, 12, 0, 0, 0, time.UTC)
	mock := NewFrameClock(start, 16*time.Millisecond)
	clock := NewPausableClock(mock)

	mock.Advance(5 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Fatalf("Expected game time to track real time, got %v", got)
	}

	clock.Pause()
	clock.Pause() // idempotent
	mock.Advance(10 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("Expected frozen game time during pause, got %v", got)
	}
	if d := clock.TotalPauseDuration(); d != 10*time.Second {
		t.Errorf("Expected 10s pause duration, got %v", d)
	}

	clock.Resume()
	clock.Resume() // idempotent
	mock.Advance(2 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(7 * time.Second)) {
		t.Errorf("Expected game time to resume from pause point, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock to be running after Resume")
	}
	if !clock.RealTime().Equal(start.Add(17 * time.Second)) {
		t.Errorf("RealTime should ignore pauses, got %v", clock.RealTime())
	}
}
