package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type finiCounter struct{ calls int }

func (f *finiCounter) Fini() { f.calls++ }

func withExit(t *testing.T) chan int {
	t.Helper()
	codes := make(chan int, 1)
	prev := exit
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = prev
		SetCrashTerminal(nil)
	})
	return codes
}

func TestGoRecoversPanic(t *testing.T) {
	codes := withExit(t)
	term := &finiCounter{}
	SetCrashTerminal(term)
	var buf bytes.Buffer
	SetCrashLogger(zerolog.New(&buf))

	Go(func() { panic("boom") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if term.calls != 1 {
		t.Errorf("Expected terminal restored once, got %d", term.calls)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected panic value logged, got %q", buf.String())
	}
}

func TestHandleCrashNil(t *testing.T) {
	codes := withExit(t)
	HandleCrash(nil)
	select {
	case code := <-codes:
		t.Errorf("Expected no exit for nil, got %d", code)
	default:
	}
}
