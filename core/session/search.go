// ABOUTME: Debounced, cancelable search sessions with last-generation-wins result application
// ABOUTME: Every input bumps a generation counter; only the current generation may apply results

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
)

// DefaultDebounce is the quiet period before a typed query is fetched.
const DefaultDebounce = 500 * time.Millisecond

// State is the lifecycle position of a search surface.
type State string

const (
	StateIdle       State = "idle"
	StateDebouncing State = "debouncing"
	StateInFlight   State = "in_flight"
	StateApplied    State = "applied"
	StateCancelled  State = "cancelled"
	StateFailed     State = "failed"
)

// FetchFunc runs one query.
type FetchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// Snapshot is the observable state of a Search.
type Snapshot[T any] struct {
	State   State
	Session domain.SearchSession
	Results []T
	Err     error
}

// Search owns the query context of one search surface.
//
// Results are applied only when they belong to the current generation and the
// session was not cancelled. Superseded requests have their context cancelled
// and their results dropped on arrival.
type Search[T any] struct {
	fetch  FetchFunc[T]
	clock  interfaces.Clock
	logger interfaces.Logger
	delay  time.Duration

	mu       sync.Mutex
	session  domain.SearchSession
	state    State
	results  []T
	err      error
	timer    interfaces.Timer
	cancel   context.CancelFunc
	onChange func(Snapshot[T])

	inflight sync.WaitGroup
}

// NewSearch creates a search surface. A zero delay uses DefaultDebounce.
func NewSearch[T any](fetch FetchFunc[T], deps interfaces.Dependencies, delay time.Duration) *Search[T] {
	deps = deps.WithDefaults()
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Search[T]{
		fetch:   fetch,
		clock:   deps.Clock,
		logger:  deps.Logger,
		delay:   delay,
		state:   StateIdle,
		results: []T{},
	}
}

// OnChange registers an observer called after every state change. It runs
// with the session locked and must not call back into the same Search.
func (s *Search[T]) OnChange(f func(Snapshot[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = f
}

// Snapshot returns the current state.
func (s *Search[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Search[T]) snapshotLocked() Snapshot[T] {
	results := make([]T, len(s.results))
	copy(results, s.results)
	return Snapshot[T]{State: s.state, Session: s.session, Results: results, Err: s.err}
}

func (s *Search[T]) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}

// supersedeLocked starts a new generation for query and stops whatever the
// previous generation was doing.
func (s *Search[T]) supersedeLocked(query string) uint64 {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.session = domain.SearchSession{Query: query, Generation: s.session.Generation + 1}
	return s.session.Generation
}

// clearLocked empties the visible results with no fetch.
func (s *Search[T]) clearLocked(state State) {
	s.state = state
	s.results = []T{}
	s.err = nil
	s.notifyLocked()
}

// Input records a keystroke. The query is fetched once no newer input has
// arrived for the debounce delay. An empty query clears results immediately.
func (s *Search[T]) Input(query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.supersedeLocked(query)
	if query == "" {
		s.clearLocked(StateIdle)
		return
	}

	s.state = StateDebouncing
	s.timer = s.clock.AfterFunc(s.delay, func() { s.run(context.Background(), gen) })
	s.notifyLocked()
}

// Submit fetches query immediately, bypassing the debounce, and returns the
// resulting state. ctx bounds the fetch.
func (s *Search[T]) Submit(ctx context.Context, query string) Snapshot[T] {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	gen := s.supersedeLocked(query)
	if query == "" {
		s.clearLocked(StateIdle)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.mu.Unlock()

	s.run(ctx, gen)
	return s.Snapshot()
}

// Clear cancels the current session and empties the results.
func (s *Search[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersedeLocked("")
	s.session.Cancelled = true
	s.clearLocked(StateCancelled)
}

// Wait blocks until every started fetch has returned.
func (s *Search[T]) Wait() {
	s.inflight.Wait()
}

// run fetches for generation gen if it is still current.
func (s *Search[T]) run(parent context.Context, gen uint64) {
	s.mu.Lock()
	if gen != s.session.Generation || s.session.Cancelled {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.timer = nil
	s.state = StateInFlight
	query := s.session.Query
	s.inflight.Add(1)
	s.notifyLocked()
	s.mu.Unlock()

	defer s.inflight.Done()
	defer cancel()

	results, err := s.fetch(ctx, query)
	s.apply(gen, results, err)
}

func (s *Search[T]) apply(gen uint64, results []T, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.session.Generation || s.session.Cancelled {
		s.logger.Debug("Dropped stale search result", map[string]interface{}{
			"generation": gen,
			"current":    s.session.Generation,
		})
		return
	}
	s.cancel = nil

	if err != nil {
		s.logger.Warn("Search failed", map[string]interface{}{
			"query":      s.session.Query,
			"generation": gen,
			"error":      err.Error(),
		})
		s.state = StateFailed
		s.results = []T{}
		s.err = err
		s.notifyLocked()
		return
	}

	if results == nil {
		results = []T{}
	}
	s.state = StateApplied
	s.results = results
	s.err = nil
	s.notifyLocked()
}
