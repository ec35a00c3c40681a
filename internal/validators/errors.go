package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRPCURL       = errors.New("invalid rpc url")
	ErrInvalidConsensusRPC = errors.New("invalid consensus rpc url")
	ErrInvalidSyncTimeout  = errors.New("invalid sync timeout")
)
