// Package frame is the per-frame scheduler port. The simulation registers
// a callback and never drives time itself; a host loop (ebiten, a ticker,
// or a test) decides when frames happen and how long they were.
package frame

import (
	"sync"
	"time"
)

// Callback runs once per displayed frame with the elapsed time in seconds.
type Callback func(dt float64)

// Scheduler registers per-frame callbacks.
type Scheduler interface {
	Register(cb Callback) (cancel func())
}

// registry is the callback set shared by Loop and Manual.
type registry struct {
	mu     sync.Mutex
	nextID int
	cbs    map[int]Callback
	order  []int
}

func (r *registry) register(cb Callback) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cbs == nil {
		r.cbs = make(map[int]Callback)
	}
	id := r.nextID
	r.nextID++
	r.cbs[id] = cb
	r.order = append(r.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.cbs, id)
			for i, o := range r.order {
				if o == id {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (r *registry) snapshot() []Callback {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Callback, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cbs[id])
	}
	return out
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cbs)
}

// Loop is driven by a host calling Tick with wall-clock timestamps. The
// first tick after construction, Reset, or an empty-to-non-empty
// registration only records the timestamp, so a resumed view never sees
// the whole pause as one frame.
type Loop struct {
	reg  registry
	mu   sync.Mutex
	last time.Time
}

// NewLoop returns an idle loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Register adds cb. Registering on an idle loop resets its clock.
func (l *Loop) Register(cb Callback) func() {
	if l.reg.len() == 0 {
		l.Reset()
	}
	return l.reg.register(cb)
}

// Reset forgets the previous timestamp.
func (l *Loop) Reset() {
	l.mu.Lock()
	l.last = time.Time{}
	l.mu.Unlock()
}

// Tick runs every callback with the time since the previous tick.
func (l *Loop) Tick(now time.Time) {
	l.mu.Lock()
	prev := l.last
	l.last = now
	l.mu.Unlock()

	if prev.IsZero() {
		return
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return
	}
	for _, cb := range l.reg.snapshot() {
		cb(dt)
	}
}

// Len reports how many callbacks are registered.
func (l *Loop) Len() int { return l.reg.len() }

// Manual is a Scheduler for tests and offline rendering: each Step hands
// the given dt to every callback unchanged.
type Manual struct {
	reg registry
}

// Register adds cb.
func (m *Manual) Register(cb Callback) func() {
	return m.reg.register(cb)
}

// Step runs every callback with dt.
func (m *Manual) Step(dt float64) {
	for _, cb := range m.reg.snapshot() {
		cb(dt)
	}
}

// Steps runs Step for each dt in order.
func (m *Manual) Steps(dts ...float64) {
	for _, dt := range dts {
		m.Step(dt)
	}
}

// Len reports how many callbacks are registered.
func (m *Manual) Len() int { return m.reg.len() }
