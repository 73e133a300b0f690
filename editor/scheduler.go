package editor

import (
	"sync"
	"time"
)

// Scheduler runs deferred tasks for an editor: debounced recomputations and
// one-shot removals. Callbacks fire on a timer goroutine and are routed
// through the dispatch function, so a GUI host can post them back onto its
// event-dispatch thread and keep the editor single-threaded.
type Scheduler struct {
	dispatch func(func())

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewScheduler creates a scheduler. A nil dispatch invokes callbacks
// directly on the timer goroutine.
func NewScheduler(dispatch func(func())) *Scheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Scheduler{dispatch: dispatch, timers: make(map[string]*time.Timer)}
}

// Debounce schedules fn to run after d, replacing any pending task with the
// same key. Only the last write within the window wins; there is no backlog.
func (s *Scheduler) Debounce(key string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() { s.dispatch(fn) })
}

// Cancel stops a pending debounced task.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

// Once schedules fn to run after d. One-shot tasks have no cancellation
// path; callers guard against stale firings themselves (see the run-cursor
// generation counter).
func (s *Scheduler) Once(d time.Duration, fn func()) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	time.AfterFunc(d, func() { s.dispatch(fn) })
}

// Stop cancels all pending tasks and rejects new ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}
