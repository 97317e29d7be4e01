// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Overridable in tests
	crashOut  io.Writer = os.Stderr
	resetOut  io.Writer = os.Stdout
	crashExit           = os.Exit
)

// Terminal restore sequences for when the screen cannot be finalized
var resetSequences = [][]byte{
	[]byte("\x1b[?1003l"), // mouse motion off
	[]byte("\x1b[?1002l"), // mouse drag off
	[]byte("\x1b[?1000l"), // mouse click off
	[]byte("\x1b[?1006l"), // SGR mouse off
	[]byte("\x1b[?25h"),   // cursor show
	[]byte("\x1b[?1049l"), // alt screen exit
	[]byte("\x1b[0m"),     // SGR reset
	[]byte("\x1b[?7h"),    // auto-wrap on
}

// SetCrashScreen registers the screen finalized by HandleCrash
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// EmergencyReset writes raw restore sequences to w
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	} else {
		EmergencyReset(resetOut)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mSUPR GROWTH CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
