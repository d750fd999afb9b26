// Package service implements the Jackut system facade: every operation
// resolves a session token or login, validates preconditions against the
// registries and mutates state, all-or-nothing.
package service

import (
	"sync"

	"jackut/internal/model"
	"jackut/internal/session"
	"jackut/internal/store"
)

// System orchestrates all operations over the account, community and
// session registries. A single mutex turns every operation into a
// mutually exclusive critical section; there is no finer-grained
// ownership boundary in the data model.
type System struct {
	mu       sync.Mutex
	store    *store.Registry
	sessions *session.Registry
}

// New wires the system facade over its registries.
func New(st *store.Registry, sessions *session.Registry) *System {
	return &System{
		store:    st,
		sessions: sessions,
	}
}

// resolve maps a session token to its live user record. Callers must
// hold s.mu.
func (s *System) resolve(token string) (*model.User, error) {
	login, ok := s.sessions.Resolve(token)
	if !ok {
		return nil, model.ErrInvalidSession
	}
	user, ok := s.store.User(login)
	if !ok {
		return nil, model.ErrInvalidSession
	}
	return user, nil
}

// Reset wipes every registry and the persisted snapshot. Unconditional
// and unrecoverable.
func (s *System) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Clear()
	return s.store.Reset()
}

// Shutdown serializes the user and community registries to the snapshot
// file, overwriting any previous snapshot. Sessions are not persisted.
func (s *System) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Save()
}
