package emotion

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Listener receives every committed snapshot.
type Listener func(State)

// Store owns the committed emotional state for the lifetime of the process.
// Writes replace the snapshot atomically so readers never see a partial
// update; a mutex serializes writers and the subscriber set.
type Store struct {
	current atomic.Pointer[State]

	mu     sync.Mutex
	notify sync.Mutex
	subs   map[uuid.UUID]Listener
	order  []uuid.UUID
	now    func() time.Time
	closed bool
}

// Option configures a Store.
type Option func(*Store, *Levels)

// WithClock replaces time.Now for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store, _ *Levels) { s.now = now }
}

// WithInitial starts the store at l instead of Neutral.
func WithInitial(l Levels) Option {
	return func(_ *Store, init *Levels) { *init = l }
}

// NewStore returns a store holding the neutral state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		subs: make(map[uuid.UUID]Listener),
		now:  time.Now,
	}
	init := Neutral()
	for _, opt := range opts {
		opt(s, &init)
	}
	st := State{Levels: init.Clamp(), LastUpdated: s.now()}
	s.current.Store(&st)
	return s
}

// State returns the current committed snapshot.
func (s *Store) State() State {
	return *s.current.Load()
}

// Update merges p into the current state, clamps every field, stamps
// LastUpdated and notifies subscribers. It returns the new snapshot.
// Deliveries are serialized in commit order, so listeners must not call
// Update themselves.
func (s *Store) Update(p Partial) State {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		slog.Debug("update on closed store ignored")
		return s.State()
	}
	prev := s.current.Load()
	next := State{
		Levels:      prev.Levels.apply(p),
		LastUpdated: s.now(),
	}
	s.current.Store(&next)

	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.subs[id])
	}
	// taken before mu is released so the next commit waits its turn
	s.notify.Lock()
	defer s.notify.Unlock()
	s.mu.Unlock()

	slog.Debug("emotional state updated",
		"intensity", next.Intensity,
		"valence", next.Valence,
		"heaviness", next.Heaviness,
		"chaos", next.Chaos,
		"energy", next.Energy,
	)

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// Subscribe registers fn for every future commit. The returned function
// removes it and may be called more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := uuid.New()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, o := range s.order {
				if o == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers reports how many listeners are registered.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close drops all subscribers. Later updates are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[uuid.UUID]Listener)
	s.order = nil
}
