package service

import (
	"errors"

	"github.com/MKhiriev/helios-keeper/internal/lightclient"
	"github.com/MKhiriev/helios-keeper/internal/validators"
)

var (
	// ErrUnsupportedChain is returned by Start for chain ids missing from the
	// network table. Its text is "Unsupported chain ID: <id>".
	ErrUnsupportedChain = lightclient.ErrUnsupportedChain

	ErrDataDirUnresolvable = errors.New("data directory cannot be resolved")
	ErrBuildFailed         = errors.New("failed to build light client")
	ErrStartFailed         = errors.New("failed to start light client")
	ErrSyncTimeout         = errors.New("light client did not sync in time")

	ErrNotStarted     = errors.New("Client not started")
	ErrAlreadyStarted = errors.New("light client already started")

	ErrQueryFailed         = errors.New("light client query failed")
	ErrSerializationFailed = errors.New("block serialization failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error codes reported to RPC callers.
const (
	CodeUnsupportedChain    = "unsupported_chain"
	CodeDataDirUnresolvable = "data_dir_unresolvable"
	CodeBuildFailed         = "build_failed"
	CodeStartFailed         = "start_failed"
	CodeSyncTimeout         = "sync_timeout"
	CodeNotStarted          = "not_started"
	CodeAlreadyStarted      = "already_started"
	CodeQueryFailed         = "query_failed"
	CodeSerializationFailed = "serialization_failed"
	CodeInvalidRequest      = "invalid_request"
	CodeInternal            = "internal"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrUnsupportedChain, CodeUnsupportedChain},
	{ErrDataDirUnresolvable, CodeDataDirUnresolvable},
	{ErrBuildFailed, CodeBuildFailed},
	{ErrStartFailed, CodeStartFailed},
	{ErrSyncTimeout, CodeSyncTimeout},
	{ErrNotStarted, CodeNotStarted},
	{ErrAlreadyStarted, CodeAlreadyStarted},
	{ErrQueryFailed, CodeQueryFailed},
	{ErrSerializationFailed, CodeSerializationFailed},
	{validators.ErrInvalidRPCURL, CodeInvalidRequest},
	{validators.ErrInvalidConsensusRPC, CodeInvalidRequest},
	{validators.ErrInvalidSyncTimeout, CodeInvalidRequest},
}

// ErrorCode classifies err into one of the Code* values. Errors outside the
// taxonomy map to CodeInternal.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
