// Package session owns the in-memory datasets. Each upload creates a session
// holding one immutable dataset; re-uploads swap the dataset atomically, and
// nothing here ever persists record data.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"suicide-analytics-service/internal/engine"
	"suicide-analytics-service/internal/model"
)

// ErrNotFound reports an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Session is one uploaded dataset plus its load report.
type Session struct {
	ID        string
	Name      string
	Dataset   model.Dataset
	Warnings  []engine.RowWarning
	Rollups   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager hands out sessions keyed by ID. Reads share the lock; dataset
// replacement is the only write after creation and swaps the value wholesale,
// so a reader always sees either the old dataset or the new one, never a mix.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a freshly loaded dataset under a new session ID.
func (m *Manager) Create(name string, res *engine.LoadResult) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.New().String(),
		Name:      name,
		Dataset:   res.Dataset,
		Warnings:  res.Warnings,
		Rollups:   res.Rollups,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a snapshot of the session. The returned value is a copy; the
// dataset inside it is immutable, so callers can aggregate without holding
// any lock.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *s, nil
}

// Replace swaps the session's dataset for a newly loaded one. Loads that fail
// never reach this point, so a rejected upload leaves the previous dataset
// active.
func (m *Manager) Replace(id, name string, res *engine.LoadResult) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if name != "" {
		s.Name = name
	}
	s.Dataset = res.Dataset
	s.Warnings = res.Warnings
	s.Rollups = res.Rollups
	s.UpdatedAt = time.Now().UTC()
	return *s, nil
}

// Delete drops the session and its dataset.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
