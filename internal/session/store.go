package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"jobmatch/internal/domain/user"
)

var ErrInvalidSession = errors.New("invalid session")

// Session is the authenticated identity of this client. The zero value is
// the logged-out session.
type Session struct {
	Token    string    `json:"token"`
	UserType user.Type `json:"user_type"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Persister is durable storage for the session, shared by every client
// process pointed at the same store.
type Persister interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Notifier is implemented by persisters that can report writes made by other
// processes.
type Notifier interface {
	Changes(ctx context.Context) (<-chan struct{}, error)
}

type EventKind string

const (
	EventLogin   EventKind = "login"
	EventLogout  EventKind = "logout"
	EventChanged EventKind = "changed"
)

type Event struct {
	Kind    EventKind
	Session Session
	// External is true when the change was made by another process.
	External bool
}

// Store owns the current session. Reads are snapshots; SetSession and Clear
// are the only write paths.
type Store struct {
	persist Persister
	logger  *log.Logger

	mu     sync.RWMutex
	cur    Session
	subs   map[int]chan Event
	nextID int
}

func New(ctx context.Context, persist Persister, logger *log.Logger) (*Store, error) {
	if persist == nil {
		return nil, errors.New("nil session persister")
	}
	s := &Store{persist: persist, logger: logger, subs: map[int]chan Event{}}

	cur, err := persist.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.cur = cur
	return s, nil
}

func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Store) Token() string {
	return s.Snapshot().Token
}

func (s *Store) UserType() user.Type {
	return s.Snapshot().UserType
}

func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().Authenticated()
}

func (s *Store) SetSession(ctx context.Context, token string, userType user.Type) error {
	if token == "" || !userType.Valid() {
		return ErrInvalidSession
	}
	next := Session{Token: token, UserType: userType}
	if err := s.persist.Save(ctx, next); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Printf("[Session] login user_type=%s token=%s", userType, Mask(token))
	}
	s.publish(Event{Kind: EventLogin, Session: next})
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.persist.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	was := s.cur
	s.cur = Session{}
	s.mu.Unlock()

	if !was.Authenticated() {
		return nil
	}
	if s.logger != nil {
		s.logger.Printf("[Session] logout user_type=%s", was.UserType)
	}
	s.publish(Event{Kind: EventLogout})
	return nil
}

// Reload re-reads the persister and reports whether the session changed
// since it was last observed by this process.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	next, err := s.persist.Load(ctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	prev := s.cur
	s.cur = next
	s.mu.Unlock()

	if prev == next {
		return false, nil
	}

	kind := EventChanged
	switch {
	case !next.Authenticated():
		kind = EventLogout
	case !prev.Authenticated():
		kind = EventLogin
	}
	if s.logger != nil {
		s.logger.Printf("[Session] external change kind=%s", kind)
	}
	s.publish(Event{Kind: kind, Session: next, External: true})
	return true, nil
}

// Watch reloads the session every time the notifier reports a write, until
// ctx is done. It returns once the change feed is established.
func (s *Store) Watch(ctx context.Context, n Notifier) error {
	ch, err := n.Changes(ctx)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if _, err := s.Reload(ctx); err != nil && s.logger != nil {
					s.logger.Printf("[Session] reload error: %v", err)
				}
			}
		}
	}()
	return nil
}

// Subscribe registers an observer. Events are dropped for subscribers that
// are not keeping up; the current state is always available via Snapshot.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publish(evt Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- evt:
		default:
			if s.logger != nil {
				s.logger.Printf("[Session] event dropped kind=%s reason=subscriber_full", evt.Kind)
			}
		}
	}
}

// Mask hides all but the edges of a token for logging.
func Mask(token string) string {
	if len(token) <= 10 {
		return "****"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
