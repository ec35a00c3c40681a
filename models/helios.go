// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StartRequest carries the connection parameters for a new light-client
// session. It is the body of POST /api/helios/start.
type StartRequest struct {
	// RPCURL is the execution-layer JSON-RPC endpoint. Required.
	RPCURL string `json:"rpc_url"`

	// ConsensusRPC is the beacon node REST endpoint serving light-client data.
	// When empty the configured default, or the network default, is used.
	ConsensusRPC string `json:"consensus_rpc,omitempty"`

	// ChainID selects the network. Only chain IDs present in the network
	// table are accepted.
	ChainID uint64 `json:"chain_id"`

	// SyncTimeout bounds the wait for the client to report itself synced.
	// Zero selects the configured default.
	SyncTimeout Duration `json:"sync_timeout,omitempty"`
}

// SessionInfo describes an installed light-client session.
type SessionInfo struct {
	// ID is a uuid v7 assigned when the session starts.
	ID string `json:"id"`

	// ChainID and Network identify the chain the client follows.
	ChainID uint64 `json:"chain_id"`
	Network string `json:"network"`

	// ExecutionRPC and ConsensusRPC are the endpoints actually used, after
	// defaults were applied.
	ExecutionRPC string `json:"execution_rpc"`
	ConsensusRPC string `json:"consensus_rpc"`

	// DataDir is the directory holding persistent light-client state.
	DataDir string `json:"data_dir"`

	// StartedAt is the moment the session was installed (sync completed).
	StartedAt time.Time `json:"started_at"`
}

// HeadInfo is a snapshot of the heads tracked by a running light client.
type HeadInfo struct {
	// Slot is the beacon slot of the optimistic (latest) head.
	Slot uint64 `json:"slot"`

	// BlockNumber and BlockHash identify the execution block carried by the
	// optimistic head.
	BlockNumber uint64 `json:"block_number"`
	BlockHash   string `json:"block_hash"`

	// FinalizedSlot and FinalizedBlockNumber describe the finalized head.
	FinalizedSlot        uint64 `json:"finalized_slot"`
	FinalizedBlockNumber uint64 `json:"finalized_block_number"`

	// Synced reports whether the optimistic head is within the network's
	// sync tolerance of the wall-clock slot.
	Synced bool `json:"synced"`
}

// SessionStatus is returned by GET /api/helios/status.
type SessionStatus struct {
	Running bool         `json:"running"`
	Session *SessionInfo `json:"session,omitempty"`
	Head    *HeadInfo    `json:"head,omitempty"`
}
