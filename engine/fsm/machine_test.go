package fsm

import (
	"errors"
	"strings"
	"testing"
)

type recorder struct {
	log     []string
	allowed bool
}

const testGraph = `
initial = "idle"

[states.Root]
transitions = [{ trigger = "abort", target = "idle" }]

[states.idle]
on_enter = [{ action = "Record", args = { tag = "enter" } }]
on_exit = [{ action = "Record", args = { tag = "exit" } }]
transitions = [{ trigger = "go", target = "run" }]

[states.play]
on_enter = [{ action = "Record", args = { tag = "enter" } }]
on_exit = [{ action = "Record", args = { tag = "exit" } }]

[states.run]
parent = "play"
on_enter = [{ action = "Record", args = { tag = "enter" } }]
on_exit = [{ action = "Record", args = { tag = "exit" } }]
transitions = [
  { trigger = "jump", target = "fly", guard = "Allowed" },
  { trigger = "Tick", target = "fly", guard = "AfterThree" },
]

[states.fly]
parent = "play"
on_enter = [{ action = "Record", args = { tag = "enter" } }]
on_exit = [{ action = "Record", args = { tag = "exit" } }]
`

func newTestMachine(t *testing.T) (*Machine[*recorder], *recorder) {
	t.Helper()
	m := NewMachine[*recorder]()
	m.RegisterAction("Record", func(r *recorder, state string, args map[string]any) {
		r.log = append(r.log, args["tag"].(string)+":"+state)
	})
	m.RegisterGuard("Allowed", func(r *recorder, _ uint64) bool { return r.allowed })
	m.RegisterGuard("AfterThree", func(_ *recorder, ticks uint64) bool { return ticks >= 3 })
	if err := m.LoadConfig([]byte(testGraph)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	r := &recorder{}
	if err := m.Init(r); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, r
}

func TestInitEntersInitialState(t *testing.T) {
	m, r := newTestMachine(t)
	if m.Current() != "idle" {
		t.Errorf("Expected idle, got %q", m.Current())
	}
	if strings.Join(r.log, ",") != "enter:idle" {
		t.Errorf("Unexpected enter log: %v", r.log)
	}
}

func TestFireRunsExitAndEnterAlongPath(t *testing.T) {
	m, r := newTestMachine(t)
	r.log = nil

	if err := m.Fire(r, "go"); err != nil {
		t.Fatalf("Fire go: %v", err)
	}
	want := "exit:idle,enter:play,enter:run"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if !m.InState("play") || !m.InState("run") {
		t.Error("Expected play and run on active path")
	}
}

func TestSiblingTransitionKeepsParent(t *testing.T) {
	m, r := newTestMachine(t)
	_ = m.Fire(r, "go")
	r.log = nil
	r.allowed = true

	if err := m.Fire(r, "jump"); err != nil {
		t.Fatalf("Fire jump: %v", err)
	}
	want := "exit:run,enter:fly"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestGuardBlocksTransition(t *testing.T) {
	m, r := newTestMachine(t)
	_ = m.Fire(r, "go")

	err := m.Fire(r, "jump")
	if !errors.Is(err, ErrNoTransition) {
		t.Fatalf("Expected ErrNoTransition, got %v", err)
	}
	if m.Current() != "run" {
		t.Errorf("Expected run, got %s", m.Current())
	}
}

func TestTriggerBubblesToRoot(t *testing.T) {
	m, r := newTestMachine(t)
	_ = m.Fire(r, "go")

	if err := m.Fire(r, "abort"); err != nil {
		t.Fatalf("Fire abort: %v", err)
	}
	if m.Current() != "idle" {
		t.Errorf("Expected idle, got %s", m.Current())
	}
}

func TestTickTransitionAfterGuard(t *testing.T) {
	m, r := newTestMachine(t)
	_ = m.Fire(r, "go")

	m.Update(r)
	m.Update(r)
	if m.Current() != "run" {
		t.Fatalf("Expected run after 2 ticks, got %s", m.Current())
	}
	m.Update(r)
	if m.Current() != "fly" {
		t.Errorf("Expected fly after 3 ticks, got %s", m.Current())
	}
	if m.TicksInState() != 0 {
		t.Errorf("Expected tick counter reset, got %d", m.TicksInState())
	}
}

func TestLoadConfigRejectsUnknownReferences(t *testing.T) {
	cases := map[string]string{
		"target": `initial = "a"
[states.a]
transitions = [{ trigger = "x", target = "missing" }]`,
		"action": `initial = "a"
[states.a]
on_enter = [{ action = "Nope" }]`,
		"guard": `initial = "a"
[states.a]
transitions = [{ trigger = "x", target = "a", guard = "Nope" }]`,
		"initial": `initial = "missing"
[states.a]`,
		"parent": `initial = "a"
[states.a]
parent = "ghost"`,
	}
	for name, doc := range cases {
		m := NewMachine[*recorder]()
		if err := m.LoadConfig([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestResetReturnsToInitial(t *testing.T) {
	m, r := newTestMachine(t)
	_ = m.Fire(r, "go")
	r.log = nil

	if err := m.Reset(r); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	want := "exit:run,exit:play,enter:idle"
	if got := strings.Join(r.log, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
