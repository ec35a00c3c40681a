package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/models"
)

type rpcExecutionAdapter struct {
	client  *rpc.Client
	timeout time.Duration
	logger  *logger.Logger
}

// NewRPCExecutionAdapter dials the execution JSON-RPC endpoint. http(s) and
// ws(s) URLs are accepted. For HTTP no connection is made until the first
// call.
func NewRPCExecutionAdapter(ctx context.Context, rawURL string, timeout time.Duration, logger *logger.Logger) (ExecutionAdapter, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: execution rpc: %w", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("%w: execution rpc: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: execution rpc: missing host", ErrInvalidURL)
	}

	client, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial execution rpc: %w", err)
	}

	return &rpcExecutionAdapter{client: client, timeout: timeout, logger: logger}, nil
}

func (a *rpcExecutionAdapter) call(ctx context.Context, result any, method string, args ...any) error {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if err := a.client.CallContext(ctx, result, method, args...); err != nil {
		a.logger.Debug().Err(err).Str("method", method).Msg("execution rpc call failed")
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (a *rpcExecutionAdapter) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := a.call(ctx, &id, "eth_chainId"); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (a *rpcExecutionAdapter) BlockByNumber(ctx context.Context, number string, fullTx bool) (*models.Block, error) {
	var raw json.RawMessage
	if err := a.call(ctx, &raw, "eth_getBlockByNumber", number, fullTx); err != nil {
		return nil, err
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, number)
	}

	var block models.Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("%w: block %s: %w", ErrInvalidResponse, number, err)
	}
	return &block, nil
}

func (a *rpcExecutionAdapter) Close() {
	a.client.Close()
}
