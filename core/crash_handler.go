package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Finisher restores the terminal before a crash report is printed
type Finisher interface {
	Fini()
}

var (
	crashTerminal atomic.Pointer[Finisher]
	crashLogger   atomic.Pointer[zerolog.Logger]

	// exit is replaced in tests
	exit = os.Exit
)

// SetCrashTerminal registers the terminal to restore on panic, nil clears it
func SetCrashTerminal(t Finisher) {
	if t == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&t)
}

// SetCrashLogger registers the logger that records the stack trace
func SetCrashLogger(log zerolog.Logger) {
	crashLogger.Store(&log)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	// Restore terminal to sane state before writing anything
	if t := crashTerminal.Load(); t != nil {
		(*t).Fini()
	}

	if l := crashLogger.Load(); l != nil {
		l.Error().Str("panic", fmt.Sprint(r)).Bytes("stack", stack).Msg("crash")
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
