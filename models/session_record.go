// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionState is the lifecycle state of a journaled session.
type SessionState string

const (
	// SessionRunning marks the currently installed session.
	SessionRunning SessionState = "running"

	// SessionFailed marks a Start that never produced an installed session.
	SessionFailed SessionState = "failed"

	// SessionStopped marks a session torn down by an explicit Stop or by
	// process shutdown.
	SessionStopped SessionState = "stopped"

	// SessionReplaced marks a session retired because a newer Start
	// installed a different client.
	SessionReplaced SessionState = "replaced"
)

// SessionRecord is one row of the session journal.
type SessionRecord struct {
	SessionInfo

	// State is the last known lifecycle state.
	State SessionState `json:"state"`

	// Error holds the failure cause for failed sessions.
	Error string `json:"error,omitempty"`

	// StoppedAt is set once the session leaves the running state.
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
}

// SessionFilter narrows a journal listing.
type SessionFilter struct {
	// State, when non-empty, restricts results to one state.
	State SessionState

	// ChainID, when non-zero, restricts results to one chain.
	ChainID uint64

	// Limit caps the number of rows; values <= 0 select the default.
	Limit int
}
