package store

import (
	"context"
	"time"

	"github.com/MKhiriev/helios-keeper/models"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionJournal records the lifecycle of light-client sessions.
type SessionJournal interface {
	// SaveSession inserts a new journal row.
	SaveSession(ctx context.Context, rec models.SessionRecord) error
	// FinishSession moves a running session to state at the given time.
	FinishSession(ctx context.Context, id string, state models.SessionState, at time.Time) error
	// ListSessions returns the most recent sessions first.
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error)
}

// CheckpointStore persists the last trusted finalized beacon root per
// network.
type CheckpointStore interface {
	// LoadCheckpoint reports false when nothing is stored for network.
	LoadCheckpoint(network string) (common.Hash, bool, error)
	SaveCheckpoint(network string, root common.Hash) error
	Close() error
}
