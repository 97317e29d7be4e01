package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// captureCrash swaps the crash outputs and exit for the duration of a test
func captureCrash(t *testing.T) (out, reset *bytes.Buffer, codes chan int) {
	t.Helper()
	out, reset = &bytes.Buffer{}, &bytes.Buffer{}
	codes = make(chan int, 1)

	prevOut, prevReset, prevExit := crashOut, resetOut, crashExit
	crashOut, resetOut = out, reset
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, resetOut, crashExit = prevOut, prevReset, prevExit
		SetCrashScreen(nil)
	})
	return out, reset, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	out, _, codes := captureCrash(t)
	HandleCrash(nil)
	if out.Len() != 0 || len(codes) != 0 {
		t.Error("HandleCrash(nil) should do nothing")
	}
}

func TestHandleCrashWithoutScreenResetsTerminal(t *testing.T) {
	out, reset, codes := captureCrash(t)

	HandleCrash("boom")

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "CRASHED: boom") || !strings.Contains(out.String(), "Stack Trace") {
		t.Errorf("Crash report missing panic value or stack: %q", out.String())
	}
	if !bytes.Contains(reset.Bytes(), []byte("\x1b[?25h")) || !bytes.Contains(reset.Bytes(), []byte("\x1b[?1049l")) {
		t.Error("Expected cursor-show and alt-screen-exit sequences")
	}
}

type finiScreen struct {
	tcell.Screen
	mu    sync.Mutex
	finis int
}

func (s *finiScreen) Fini() {
	s.mu.Lock()
	s.finis++
	s.mu.Unlock()
}

func TestHandleCrashFinalizesRegisteredScreen(t *testing.T) {
	_, reset, codes := captureCrash(t)
	screen := &finiScreen{}
	SetCrashScreen(screen)

	HandleCrash("boom")
	<-codes

	if screen.finis != 1 {
		t.Errorf("Expected one Fini, got %d", screen.finis)
	}
	if reset.Len() != 0 {
		t.Error("Raw reset should be skipped when the screen is finalized")
	}
}

func TestGoRecoversPanics(t *testing.T) {
	out, _, codes := captureCrash(t)

	Go(func() { panic("poller died") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "poller died") {
		t.Errorf("Crash report missing panic value: %q", out.String())
	}
}
