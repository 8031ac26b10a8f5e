package core

import "time"

// Ticker paces automatic evolution at a fixed number of generations per
// second, independent of the frontend's frame rate. A paused ticker never
// fires and forgets the time spent paused.
type Ticker struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool

	now func() time.Time
}

// NewTicker constructs a paused Ticker targeting the given rate.
func NewTicker(perSecond int) *Ticker {
	t := &Ticker{now: time.Now}
	t.SetRate(perSecond)
	return t
}

// SetRate changes the generation rate. Non-positive rates fall back to 4.
func (t *Ticker) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 4
	}
	t.step = time.Second / time.Duration(perSecond)
}

// Running reports whether the ticker is currently firing.
func (t *Ticker) Running() bool { return t.running }

// SetRunning starts or pauses the ticker.
func (t *Ticker) SetRunning(on bool) {
	if on == t.running {
		return
	}
	t.running = on
	t.accumulator = 0
	t.last = time.Time{}
}

// Toggle flips between running and paused and returns the new state.
func (t *Ticker) Toggle() bool {
	t.SetRunning(!t.running)
	return t.running
}

// Due reports how many generations should be advanced since the previous
// call. At most one generation is reported per call so a stalled frame does
// not produce a burst of steps.
func (t *Ticker) Due() int {
	if !t.running {
		return 0
	}
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator < t.step {
		return 0
	}
	t.accumulator -= t.step
	if t.accumulator > t.step {
		t.accumulator = t.step
	}
	return 1
}
