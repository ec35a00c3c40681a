// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transports a light client uses to reach its
// two upstream endpoints.
//
// [ConsensusAdapter] talks to a beacon node's light-client REST API
// (/eth/v1/beacon/light_client/...) over resty. [ExecutionAdapter] talks to an
// execution node over JSON-RPC using go-ethereum's rpc client.
//
// HTTP status codes from the beacon node are mapped to the sentinel values
// in errors.go by mapHTTPError so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/helios-keeper/models"
)

// ConsensusAdapter fetches light-client data from a beacon node.
type ConsensusAdapter interface {
	// Bootstrap returns the bootstrap object for the trusted block root.
	// Returns [ErrNotFound] (wrapped) when the node has pruned that root.
	Bootstrap(ctx context.Context, root common.Hash) (models.LightClientBootstrap, error)

	// FinalityUpdate returns the node's latest finality update.
	FinalityUpdate(ctx context.Context) (models.LightClientFinalityUpdate, error)

	// OptimisticUpdate returns the node's latest optimistic update.
	OptimisticUpdate(ctx context.Context) (models.LightClientOptimisticUpdate, error)
}

// ExecutionAdapter reads from an execution node.
type ExecutionAdapter interface {
	// ChainID returns eth_chainId.
	ChainID(ctx context.Context) (uint64, error)

	// BlockByNumber calls eth_getBlockByNumber. number is a JSON-RPC block
	// reference ("latest", "finalized" or a hex quantity). Returns
	// [ErrBlockNotFound] when the node answers null.
	BlockByNumber(ctx context.Context, number string, fullTx bool) (*models.Block, error)

	// Close releases the underlying connection.
	Close()
}
