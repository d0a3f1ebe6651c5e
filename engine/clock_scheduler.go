package engine

import (
	"sync/atomic"
	"time"

	"github.com/drillerjoe/space/status"
)

// Ticker is advanced once per simulation tick
type Ticker interface {
	Update()
}

// ClockScheduler converts pausable game time into fixed simulation ticks
// Catch-up is bounded: falling further behind than maxBehind resynchronizes instead of bursting
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	nextDeadline time.Duration
	maxBehind    int

	tickCount uint64
	statTicks *atomic.Int64
	statDrops *atomic.Int64
}

// NewClockScheduler creates a scheduler running tickRate ticks per second of game time
func NewClockScheduler(clock *PausableClock, tickRate int, reg *status.Registry) *ClockScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return &ClockScheduler{
		clock:        clock,
		tickInterval: interval,
		nextDeadline: clock.Elapsed() + interval,
		maxBehind:    2,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statDrops:    reg.Ints.Get("engine.dropped_ticks"),
	}
}

// TickInterval returns the fixed simulation step
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// Due reports how many ticks are owed at the current game time and advances the deadline
func (cs *ClockScheduler) Due() int {
	if cs.clock.IsPaused() {
		return 0
	}
	now := cs.clock.Elapsed()
	due := 0
	for now >= cs.nextDeadline {
		due++
		cs.nextDeadline += cs.tickInterval
	}
	if due > cs.maxBehind {
		cs.statDrops.Add(int64(due - cs.maxBehind))
		due = cs.maxBehind
		cs.nextDeadline = now + cs.tickInterval
	}
	return due
}

// Advance runs every due tick on t and returns how many ran
func (cs *ClockScheduler) Advance(t Ticker) int {
	n := cs.Due()
	for i := 0; i < n; i++ {
		t.Update()
		cs.tickCount++
	}
	cs.statTicks.Store(int64(cs.tickCount))
	return n
}

// UntilNext returns the wait until the next tick deadline
func (cs *ClockScheduler) UntilNext() time.Duration {
	if cs.clock.IsPaused() {
		return cs.tickInterval * 2
	}
	d := cs.nextDeadline - cs.clock.Elapsed()
	if d < 0 {
		return 0
	}
	return d
}

// Resync drops owed ticks, used after resume so a pause does not produce a burst
func (cs *ClockScheduler) Resync() {
	cs.nextDeadline = cs.clock.Elapsed() + cs.tickInterval
}
