package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// Decimal is an unsigned integer encoded by the beacon API as a quoted
// decimal string ("12345"). Plain JSON numbers are accepted too.
type Decimal uint64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid decimal %q: %w", s, err)
		}
		*d = Decimal(n)
		return nil
	}

	var n uint64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Decimal(n)
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(d), 10))
}

// BeaconBlockHeader is the consensus-layer block header.
type BeaconBlockHeader struct {
	Slot          Decimal     `json:"slot"`
	ProposerIndex Decimal     `json:"proposer_index"`
	ParentRoot    common.Hash `json:"parent_root"`
	StateRoot     common.Hash `json:"state_root"`
	BodyRoot      common.Hash `json:"body_root"`
}

// ExecutionPayloadHeader is the subset of the execution payload header
// carried by Capella and later light-client headers.
type ExecutionPayloadHeader struct {
	ParentHash   common.Hash    `json:"parent_hash"`
	FeeRecipient common.Address `json:"fee_recipient"`
	StateRoot    common.Hash    `json:"state_root"`
	BlockNumber  Decimal        `json:"block_number"`
	Timestamp    Decimal        `json:"timestamp"`
	BlockHash    common.Hash    `json:"block_hash"`
}

// LightClientHeader pairs a beacon header with the execution payload header
// it commits to.
type LightClientHeader struct {
	Beacon    BeaconBlockHeader       `json:"beacon"`
	Execution *ExecutionPayloadHeader `json:"execution,omitempty"`
}

// LightClientBootstrap is served by /eth/v1/beacon/light_client/bootstrap/{root}.
type LightClientBootstrap struct {
	Header                     LightClientHeader `json:"header"`
	CurrentSyncCommitteeBranch []common.Hash     `json:"current_sync_committee_branch"`
}

// LightClientFinalityUpdate is served by
// /eth/v1/beacon/light_client/finality_update.
type LightClientFinalityUpdate struct {
	AttestedHeader  LightClientHeader `json:"attested_header"`
	FinalizedHeader LightClientHeader `json:"finalized_header"`
	FinalityBranch  []common.Hash     `json:"finality_branch"`
	SignatureSlot   Decimal           `json:"signature_slot"`
}

// LightClientOptimisticUpdate is served by
// /eth/v1/beacon/light_client/optimistic_update.
type LightClientOptimisticUpdate struct {
	AttestedHeader LightClientHeader `json:"attested_header"`
	SignatureSlot  Decimal           `json:"signature_slot"`
}

// BeaconResponse is the envelope used by every beacon API endpoint.
type BeaconResponse[T any] struct {
	Version string `json:"version,omitempty"`
	Data    T      `json:"data"`
}
