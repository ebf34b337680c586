package search

import "sync"

// Signal broadcasts query text between independent search surfaces (the
// header quick-search and the search screen) so their displayed terms never
// diverge. It carries text only; each surface still runs its own fetch and
// filter. This is an explicit shared observable, not a global event bus:
// surfaces receive it by injection and unsubscribe when they close.
type Signal struct {
	mu   sync.RWMutex
	subs map[int]func(origin, term string)
	next int
}

// NewSignal returns an empty broadcast signal.
func NewSignal() *Signal {
	return &Signal{subs: make(map[int]func(origin, term string))}
}

// Subscribe registers fn and returns its unsubscribe function. fn receives
// every publication, including those from the subscriber's own surface;
// callers filter by origin.
func (s *Signal) Subscribe(fn func(origin, term string)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Publish delivers term to all subscribers, tagged with the originating
// surface name. Delivery is synchronous and best-effort in order.
func (s *Signal) Publish(origin, term string) {
	s.mu.RLock()
	fns := make([]func(origin, term string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(origin, term)
	}
}
