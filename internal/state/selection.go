package state

import "sync"

// Ticket identifies the selection a request was issued for.
type Ticket[K comparable] struct {
	Key K
	gen uint64
}

// Selection is a switchable current key (the open thread, the open
// applicant). Responses are committed only if their ticket is still current.
type Selection[K comparable] struct {
	mu  sync.Mutex
	key K
	set bool
	gen uint64
}

// Select switches to key and invalidates every earlier ticket, even when key
// is unchanged.
func (s *Selection[K]) Select(key K) Ticket[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.key = key
	s.set = true
	return Ticket[K]{Key: key, gen: s.gen}
}

func (s *Selection[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero K
	s.gen++
	s.key = zero
	s.set = false
}

func (s *Selection[K]) Current() (K, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key, s.set
}

// Ticket returns a ticket for the current selection without switching.
func (s *Selection[K]) Ticket() (Ticket[K], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Ticket[K]{Key: s.key, gen: s.gen}, s.set
}

func (s *Selection[K]) Valid(t Ticket[K]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set && s.gen == t.gen && s.key == t.Key
}
