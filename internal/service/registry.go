// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/helios-keeper/internal/lightclient"
	"github.com/MKhiriev/helios-keeper/models"
)

// session is an installed light client together with what is known about
// it. Every borrower holds a lease for the duration of its call.
type session struct {
	client lightclient.Client
	info   models.SessionInfo
	leases sync.WaitGroup
}

func newSession(client lightclient.Client, info models.SessionInfo) *session {
	return &session{client: client, info: info}
}

// retire waits for outstanding leases, then shuts the client down. When ctx
// expires first the client is shut down anyway.
func (s *session) retire(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		s.leases.Wait()
		close(drained)
	}()

	select {
	case <-drained:
	case <-ctx.Done():
	}

	if err := s.client.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown session %s: %w", s.info.ID, err)
	}
	return nil
}

// SessionRegistry holds at most one installed session. The mutex only
// guards the slot and lease bookkeeping, it is never held across client
// calls.
type SessionRegistry struct {
	mu      sync.Mutex
	current *session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{}
}

// Install puts s into the slot and returns the session it displaced, if any.
// The caller retires the returned session.
func (r *SessionRegistry) Install(s *session) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current
	r.current = s
	return prev
}

// InstallIfEmpty installs s only when the slot is free.
func (r *SessionRegistry) InstallIfEmpty(s *session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		return ErrAlreadyStarted
	}
	r.current = s
	return nil
}

// Remove empties the slot and returns what was in it.
func (r *SessionRegistry) Remove() *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.current
	r.current = nil
	return prev
}

// Occupied reports whether a session is installed.
func (r *SessionRegistry) Occupied() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil
}

// WithHandle leases the installed session for the duration of fn. It returns
// ErrNotStarted when the slot is empty.
func (r *SessionRegistry) WithHandle(ctx context.Context, fn func(ctx context.Context, s *session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	s := r.current
	if s == nil {
		r.mu.Unlock()
		return ErrNotStarted
	}
	s.leases.Add(1)
	r.mu.Unlock()

	defer s.leases.Done()
	return fn(ctx, s)
}
