// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session binds browser sessions to their search view.
//
// Every session owns exactly one [view.RecordSearchView]. A [Store] creates
// views on demand and tears down the ones that stayed idle for too long,
// which is the server-side equivalent of the user navigating away. A
// [Signer] issues and verifies the signed cookie naming the session.
package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
)

// ViewFactory builds the view of a new session.
type ViewFactory func() *view.RecordSearchView

type entry struct {
	view     *view.RecordSearchView
	lastUsed time.Time
}

// Store maps session identifiers to their views.
type Store struct {
	newView     ViewFactory
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
	logger      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// StoreOption configures a [Store].
type StoreOption func(*Store)

// WithMaxSessions caps the number of live sessions at n. Creating a session
// beyond the cap evicts the least recently used one. Zero or less means no
// cap.
func WithMaxSessions(n int) StoreOption {
	return func(s *Store) {
		s.maxSessions = n
	}
}

// NewStore creates an empty store. Views idle for longer than idleTimeout
// are removed by Sweep.
func NewStore(newView ViewFactory, idleTimeout time.Duration, logger *logger.Logger, opts ...StoreOption) *Store {
	s := &Store{
		newView:     newView,
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
		sessions:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the view of session id, creating it on first use, and marks
// the session as used.
func (s *Store) Get(id string) *view.RecordSearchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
			s.evictOldestLocked()
		}
		e = &entry{view: s.newView()}
		s.sessions[id] = e
		s.logger.Debug().Str("session_id", id).Msg("session view created")
	}
	e.lastUsed = s.now()

	return e.view
}

// evictOldestLocked removes the least recently used session.
func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   *entry
	)
	for id, e := range s.sessions {
		if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
			oldestID, oldest = id, e
		}
	}
	if oldest == nil {
		return
	}

	delete(s.sessions, oldestID)
	s.logger.Warn().
		Str("session_id", oldestID).
		Int("max_sessions", s.maxSessions).
		Msg("session limit reached, evicted least recently used session")
}

// Remove tears down session id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes every session whose last use is older than the idle
// timeout at now and returns how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastUsed) > s.idleTimeout {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info().
			Int("removed", removed).
			Int("remaining", len(s.sessions)).
			Msg("idle sessions swept")
	}
	return removed
}
