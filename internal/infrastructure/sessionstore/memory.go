package sessionstore

import (
	"context"
	"sync"

	"jobmatch/internal/session"
)

// Memory keeps the session for the lifetime of the process only.
type Memory struct {
	mu  sync.Mutex
	cur session.Session
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(context.Context) (session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur, nil
}

func (m *Memory) Save(_ context.Context, s session.Session) error {
	m.mu.Lock()
	m.cur = s
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.cur = session.Session{}
	m.mu.Unlock()
	return nil
}

var _ session.Persister = (*Memory)(nil)
