package lightclient

import (
	"fmt"
	"time"
)

// Network describes a chain the light client can follow.
type Network struct {
	// Name is used as the checkpoint key and in session info.
	Name string

	ChainID uint64

	// GenesisTime and SecondsPerSlot map wall-clock time to beacon slots.
	GenesisTime    time.Time
	SecondsPerSlot uint64

	// DefaultConsensusRPC serves light-client data when a request names
	// no consensus endpoint.
	DefaultConsensusRPC string

	// SyncTolerance is how many slots the optimistic head may trail the
	// wall-clock slot while the client still counts as synced.
	SyncTolerance uint64
}

// Mainnet is Ethereum mainnet.
var Mainnet = Network{
	Name:                "mainnet",
	ChainID:             1,
	GenesisTime:         time.Unix(1606824023, 0).UTC(),
	SecondsPerSlot:      12,
	DefaultConsensusRPC: "https://www.lightclientdata.org",
	SyncTolerance:       4,
}

var networks = map[uint64]Network{
	Mainnet.ChainID: Mainnet,
}

// NetworkByChainID looks a network up by chain id. Unknown ids return an
// error wrapping [ErrUnsupportedChain] whose text is
// "Unsupported chain ID: <id>".
func NetworkByChainID(chainID uint64) (Network, error) {
	n, ok := networks[chainID]
	if !ok {
		return Network{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	return n, nil
}

// SlotAt returns the beacon slot in progress at t. Times before genesis map
// to slot 0.
func (n Network) SlotAt(t time.Time) uint64 {
	if !t.After(n.GenesisTime) || n.SecondsPerSlot == 0 {
		return 0
	}
	return uint64(t.Sub(n.GenesisTime)/time.Second) / n.SecondsPerSlot
}
