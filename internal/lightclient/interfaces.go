package lightclient

import (
	"context"
	"time"

	"github.com/MKhiriev/helios-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lightclient_mock.go -package=mock

// Config is everything Build needs to construct a client.
type Config struct {
	Network      Network
	ExecutionRPC string
	ConsensusRPC string

	// DataDir holds the checkpoint file. It is created when missing.
	DataDir string

	// PollInterval is the head tracker period. Zero selects one slot.
	PollInterval time.Duration

	// RequestTimeout bounds each upstream request. Zero means no bound
	// beyond the caller context.
	RequestTimeout time.Duration
}

// Builder constructs light clients. Build performs no network I/O beyond
// what dialing the execution endpoint requires.
type Builder interface {
	Build(ctx context.Context, cfg Config) (Client, error)
}

// Client is a running (or runnable) light client.
type Client interface {
	// Start resolves a checkpoint, bootstraps from it and starts the head
	// tracker.
	Start(ctx context.Context) error

	// WaitSynced blocks until the optimistic head is within the network's
	// sync tolerance of the wall-clock slot, or ctx is done.
	WaitSynced(ctx context.Context) error

	// GetBlockByNumber fetches an execution block by tag.
	GetBlockByNumber(ctx context.Context, tag models.BlockTag, fullTx bool) (*models.Block, error)

	// Head returns a snapshot of the tracked heads.
	Head() models.HeadInfo

	// Shutdown stops the head tracker and releases endpoints and storage.
	// It is safe to call more than once.
	Shutdown(ctx context.Context) error
}
