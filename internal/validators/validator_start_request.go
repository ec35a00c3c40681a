package validators

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/MKhiriev/helios-keeper/models"
)

const (
	FieldRPCURL       = "rpc_url"
	FieldConsensusRPC = "consensus_rpc"
	FieldSyncTimeout  = "sync_timeout"
)

var (
	executionSchemes = []string{"http", "https", "ws", "wss"}
	consensusSchemes = []string{"http", "https"}
)

type StartRequestValidator struct {
}

func NewStartRequestValidator() Validator {
	return &StartRequestValidator{}
}

func (v *StartRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StartRequest:
		return v.validateStartRequest(ctx, value, fields...)
	case *models.StartRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStartRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateStartRequest leaves chain_id to the network table lookup so the
// caller gets the unsupported-chain error rather than a validation one.
func (v *StartRequestValidator) validateStartRequest(_ context.Context, req models.StartRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRPCURL, FieldConsensusRPC, FieldSyncTimeout}
	}

	for _, f := range fields {
		switch f {
		case FieldRPCURL:
			if !isEndpoint(req.RPCURL, executionSchemes) {
				return fmt.Errorf("%w: %q", ErrInvalidRPCURL, req.RPCURL)
			}
		case FieldConsensusRPC:
			if req.ConsensusRPC != "" && !isEndpoint(req.ConsensusRPC, consensusSchemes) {
				return fmt.Errorf("%w: %q", ErrInvalidConsensusRPC, req.ConsensusRPC)
			}
		case FieldSyncTimeout:
			if req.SyncTimeout < 0 {
				return ErrInvalidSyncTimeout
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEndpoint(raw string, schemes []string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return slices.Contains(schemes, u.Scheme) && u.Host != ""
}
