// SPDX-License-Identifier: Unlicense OR MIT

// Package governor bounds how often an event loop wakes up. It waits
// out the rest of a minimum frame interval, then makes a single pump
// call whose timeout depends on whether a redraw is pending: zero when
// one is, the time to the next scheduled wakeup if set, or an
// indefinite wait otherwise.
package governor

import (
	"time"
)

// DefaultInterval caps the loop at about 60 iterations per second.
const DefaultInterval = 16 * time.Millisecond

// Forever is the timeout that blocks a Source until input arrives.
const Forever time.Duration = -1

// Source produces batches of events.
type Source[E any] interface {
	// Pump processes pending input and returns the resulting events.
	// A zero timeout never blocks. A negative timeout blocks until at
	// least one input arrives, and a positive timeout waits at most
	// that long. Input already queued is returned without waiting.
	Pump(timeout time.Duration) []E
}

// Clock abstracts time for the governor.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Governor throttles event collection. It is not safe for concurrent
// use.
type Governor[E any] struct {
	interval time.Duration
	clock    Clock

	last  time.Time
	dirty bool
	// wake is the earliest scheduled wakeup, if hasWake is set.
	wake    time.Time
	hasWake bool
}

// New returns a governor with the given minimum interval. A zero
// interval selects DefaultInterval; a nil clock selects SystemClock.
// The governor starts dirty so the first call never blocks.
func New[E any](interval time.Duration, clock Clock) *Governor[E] {
	if interval == 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Governor[E]{
		interval: interval,
		clock:    clock,
		last:     clock.Now(),
		dirty:    true,
	}
}

// Interval returns the minimum time between two returns from Next.
func (g *Governor[E]) Interval() time.Duration {
	return g.interval
}

// NeedsUpdate marks a redraw as pending, so the next call to Next does
// not block for input.
func (g *Governor[E]) NeedsUpdate() {
	g.dirty = true
}

// Dirty reports whether a redraw is pending.
func (g *Governor[E]) Dirty() bool {
	return g.dirty
}

// WakeAt schedules the next call to Next to return no later than t,
// even without input. The earliest of several wakeups wins.
func (g *Governor[E]) WakeAt(t time.Time) {
	if !g.hasWake || t.Before(g.wake) {
		g.wake, g.hasWake = t, true
	}
}

// Next waits out the rest of the frame interval and returns the next
// batch of events from src. The batch is empty only when a redraw or
// wakeup was pending and no input arrived in time.
func (g *Governor[E]) Next(src Source[E]) []E {
	if wait := g.remaining(g.clock.Now()); wait > 0 {
		g.clock.Sleep(wait)
	}
	timeout := g.timeout(g.clock.Now())
	events := src.Pump(timeout)
	for len(events) == 0 && timeout == Forever {
		events = src.Pump(timeout)
	}
	g.dirty = false
	g.hasWake = false
	g.last = g.clock.Now()
	return events
}

// remaining returns how long to sleep before collecting events. A
// clock that moved backwards yields no wait.
func (g *Governor[E]) remaining(now time.Time) time.Duration {
	elapsed := now.Sub(g.last)
	if elapsed < 0 || elapsed >= g.interval {
		return 0
	}
	return g.interval - elapsed
}

func (g *Governor[E]) timeout(now time.Time) time.Duration {
	switch {
	case g.dirty:
		return 0
	case g.hasWake:
		if d := g.wake.Sub(now); d > 0 {
			return d
		}
		return 0
	default:
		return Forever
	}
}
