// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Block is an execution-layer block as returned by eth_getBlockByNumber.
//
// Transactions are kept as raw JSON because their shape depends on the
// include-full-transactions flag: either a list of hashes or a list of
// transaction objects.
type Block struct {
	Number           hexutil.Uint64 `json:"number"`
	Hash             common.Hash    `json:"hash"`
	ParentHash       common.Hash    `json:"parentHash"`
	Sha3Uncles       common.Hash    `json:"sha3Uncles"`
	Miner            common.Address `json:"miner"`
	StateRoot        common.Hash    `json:"stateRoot"`
	TransactionsRoot common.Hash    `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash    `json:"receiptsRoot"`
	LogsBloom        hexutil.Bytes  `json:"logsBloom"`
	MixHash          common.Hash    `json:"mixHash"`
	Nonce            hexutil.Bytes  `json:"nonce"`
	ExtraData        hexutil.Bytes  `json:"extraData"`
	Timestamp        hexutil.Uint64 `json:"timestamp"`
	Size             hexutil.Uint64 `json:"size"`

	Difficulty      Quantity  `json:"difficulty"`
	TotalDifficulty *Quantity `json:"totalDifficulty,omitempty"`
	GasLimit        Quantity  `json:"gasLimit"`
	GasUsed         Quantity  `json:"gasUsed"`
	BaseFeePerGas   *Quantity `json:"baseFeePerGas,omitempty"`

	WithdrawalsRoot       *common.Hash    `json:"withdrawalsRoot,omitempty"`
	BlobGasUsed           *hexutil.Uint64 `json:"blobGasUsed,omitempty"`
	ExcessBlobGas         *hexutil.Uint64 `json:"excessBlobGas,omitempty"`
	ParentBeaconBlockRoot *common.Hash    `json:"parentBeaconBlockRoot,omitempty"`

	Transactions []json.RawMessage `json:"transactions"`
	Withdrawals  []json.RawMessage `json:"withdrawals,omitempty"`
	Uncles       []common.Hash     `json:"uncles"`
}

// Quantity is an unsigned 256-bit JSON-RPC quantity ("0x"-prefixed,
// no leading zeros).
type Quantity struct {
	v uint256.Int
}

// NewQuantity returns a Quantity holding n.
func NewQuantity(n uint64) Quantity {
	var q Quantity
	q.v.SetUint64(n)
	return q
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("quantity must be a hex string: %w", err)
	}
	v, err := uint256.FromHex(s)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	q.v = *v
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.v.Hex())
}

// Uint64 returns the low 64 bits of q.
func (q Quantity) Uint64() uint64 {
	return q.v.Uint64()
}

// Big returns q as a big.Int.
func (q Quantity) Big() *big.Int {
	return q.v.ToBig()
}

func (q Quantity) String() string {
	return q.v.Dec()
}

type blockTagKind uint8

const (
	tagLatest blockTagKind = iota
	tagFinalized
	tagNumber
)

// BlockTag references a block either by relative position (latest,
// finalized) or by exact number. The zero value is the latest tag.
type BlockTag struct {
	kind   blockTagKind
	number uint64
}

var (
	// LatestBlock is the most recent block known to the light client
	// (non-finalized head).
	LatestBlock = BlockTag{kind: tagLatest}

	// FinalizedBlock is the most recent finalized block.
	FinalizedBlock = BlockTag{kind: tagFinalized}

	// ErrInvalidBlockTag is returned by ParseBlockTag for unrecognised input.
	ErrInvalidBlockTag = errors.New("invalid block tag")
)

// BlockNumberTag returns a tag referencing block n.
func BlockNumberTag(n uint64) BlockTag {
	return BlockTag{kind: tagNumber, number: n}
}

// ParseBlockTag accepts "latest", "finalized", a decimal number, or a
// 0x-prefixed hex number.
func ParseBlockTag(s string) (BlockTag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "latest":
		return LatestBlock, nil
	case "finalized":
		return FinalizedBlock, nil
	}

	if strings.HasPrefix(s, "0x") {
		n, err := hexutil.DecodeUint64(s)
		if err != nil {
			return BlockTag{}, fmt.Errorf("%w: %q", ErrInvalidBlockTag, s)
		}
		return BlockNumberTag(n), nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return BlockTag{}, fmt.Errorf("%w: %q", ErrInvalidBlockTag, s)
	}
	return BlockNumberTag(n), nil
}

// IsLatest reports whether t is the latest tag.
func (t BlockTag) IsLatest() bool { return t.kind == tagLatest }

// IsFinalized reports whether t is the finalized tag.
func (t BlockTag) IsFinalized() bool { return t.kind == tagFinalized }

// Number returns the referenced block number for numeric tags.
func (t BlockTag) Number() (uint64, bool) {
	return t.number, t.kind == tagNumber
}

// String returns the JSON-RPC representation of t.
func (t BlockTag) String() string {
	switch t.kind {
	case tagFinalized:
		return "finalized"
	case tagNumber:
		return hexutil.EncodeUint64(t.number)
	default:
		return "latest"
	}
}
