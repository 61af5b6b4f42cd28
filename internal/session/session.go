// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the currently logged-in user of one panel.
//
// A [Session] keeps the user in memory and mirrors it as JSON into a
// persisted slot so it survives a restart. Sessions never expire; they end
// only when cleared. Several independent sessions may coexist.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-auth-panel/internal/store"
	"github.com/MKhiriev/go-auth-panel/models"
)

var (
	// ErrNoSession is returned by [Session.Load] when nobody is logged in.
	ErrNoSession = errors.New("no active session")

	// ErrMalformedSession is returned by [Session.Load] when the persisted
	// slot cannot be decoded into a user.
	ErrMalformedSession = errors.New("malformed session slot")
)

// Session is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	current *models.User

	slot store.SessionStore
	key  string
}

// New returns a session mirrored into slot under key.
func New(slot store.SessionStore, key string) *Session {
	return &Session{
		slot: slot,
		key:  key,
	}
}

// Load returns the current user: the in-memory value first, then the
// persisted slot, which is cached on success.
//
// A missing slot yields [ErrNoSession]. A slot that does not decode into a
// user with an id yields [ErrMalformedSession]. Other slot errors are
// returned wrapped.
func (s *Session) Load(ctx context.Context) (models.User, error) {
	s.mu.RLock()
	if s.current != nil {
		user := *s.current
		s.mu.RUnlock()
		return user, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// another goroutine may have loaded it meanwhile
	if s.current != nil {
		return *s.current, nil
	}

	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return models.User{}, ErrNoSession
		}
		return models.User{}, fmt.Errorf("error reading session slot: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMalformedSession, err)
	}
	if user.IsZero() {
		return models.User{}, fmt.Errorf("%w: user without id", ErrMalformedSession)
	}

	s.current = &user
	return user, nil
}

// Save makes user the current user and persists it. The in-memory value is
// replaced even if the slot write fails.
func (s *Session) Save(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &user

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err := s.slot.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}

	return nil
}

// Clear forgets the current user in memory and in the slot.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("error clearing session slot: %w", err)
	}

	return nil
}
