package lightclient

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/minio/sha256-simd"

	"github.com/MKhiriev/helios-keeper/models"
)

// headerRoot returns the SSZ hash tree root of a beacon block header: five
// 32-byte leaves padded to eight and merkleized with sha256.
func headerRoot(h models.BeaconBlockHeader) common.Hash {
	var leaves [8][32]byte
	binary.LittleEndian.PutUint64(leaves[0][:], uint64(h.Slot))
	binary.LittleEndian.PutUint64(leaves[1][:], uint64(h.ProposerIndex))
	leaves[2] = h.ParentRoot
	leaves[3] = h.StateRoot
	leaves[4] = h.BodyRoot

	layer := leaves[:]
	for len(layer) > 1 {
		next := make([][32]byte, len(layer)/2)
		for i := range next {
			var buf [64]byte
			copy(buf[:32], layer[2*i][:])
			copy(buf[32:], layer[2*i+1][:])
			next[i] = sha256.Sum256(buf[:])
		}
		layer = next
	}

	return layer[0]
}
