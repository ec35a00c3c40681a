package lightclient

import "errors"

var (
	// ErrUnsupportedChain is returned by [NetworkByChainID] for chain ids
	// missing from the network table.
	ErrUnsupportedChain = errors.New("Unsupported chain ID") //nolint:staticcheck

	// ErrInvalidConfig is returned by Build for incomplete configurations.
	ErrInvalidConfig = errors.New("invalid light client config")

	// ErrChainMismatch is returned by Start when the execution endpoint
	// serves a different chain than the configured network.
	ErrChainMismatch = errors.New("execution rpc chain id mismatch")

	// ErrCheckpointMismatch is returned by Start when the bootstrap header
	// does not hash to the requested checkpoint.
	ErrCheckpointMismatch = errors.New("bootstrap header does not match checkpoint")

	// ErrNoExecutionPayload is returned when a light-client header carries
	// no execution payload header (pre-Capella data).
	ErrNoExecutionPayload = errors.New("light client header has no execution payload")

	// ErrBlockHashMismatch is returned when the execution node answers with
	// a block whose hash differs from the consensus head.
	ErrBlockHashMismatch = errors.New("execution block hash does not match consensus head")

	// ErrBlockNotAvailable is returned for block numbers above the tracked
	// optimistic head.
	ErrBlockNotAvailable = errors.New("block is ahead of the light client head")

	// ErrClientNotStarted is returned by reads issued before Start succeeded.
	ErrClientNotStarted = errors.New("light client not started")

	// ErrClientStopped is returned after Shutdown.
	ErrClientStopped = errors.New("light client stopped")
)
