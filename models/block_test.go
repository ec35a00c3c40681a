package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcBlockJSON() string {
	hash := "0x" + strings.Repeat("ab", 32)
	fields := map[string]any{
		"number":           "0x1312d00",
		"hash":             hash,
		"parentHash":       hash,
		"sha3Uncles":       hash,
		"miner":            "0x" + strings.Repeat("11", 20),
		"stateRoot":        hash,
		"transactionsRoot": hash,
		"receiptsRoot":     hash,
		"logsBloom":        "0x00",
		"mixHash":          hash,
		"nonce":            "0x0000000000000000",
		"extraData":        "0x",
		"timestamp":        "0x66a1c0f7",
		"size":             "0x1f4",
		"difficulty":       "0x0",
		"totalDifficulty":  "0xc70d815d562d3cfa955",
		"gasLimit":         "0x1c9c380",
		"gasUsed":          "0xe4e1c0",
		"baseFeePerGas":    "0x3b9aca00",
		"transactions":     []string{hash},
		"uncles":           []string{},
	}
	raw, _ := json.Marshal(fields)
	return string(raw)
}

func TestBlock_ReencodeKeepsNodeFields(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(rpcBlockJSON()), &block))

	raw, err := json.Marshal(block)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "0x0", out["difficulty"])
	assert.Equal(t, "0x0000000000000000", out["nonce"])
	assert.Equal(t, "0xc70d815d562d3cfa955", out["totalDifficulty"])
	assert.Equal(t, "0x3b9aca00", out["baseFeePerGas"])
	assert.Equal(t, "0x1312d00", out["number"])
}

func TestBlock_TotalDifficultyOmittedWhenAbsent(t *testing.T) {
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(rpcBlockJSON()), &fields))
	delete(fields, "totalDifficulty")
	raw, err := json.Marshal(fields)
	require.NoError(t, err)

	var block Block
	require.NoError(t, json.Unmarshal(raw, &block))
	assert.Nil(t, block.TotalDifficulty)

	raw, err = json.Marshal(block)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "totalDifficulty")
}

func TestParseBlockTag(t *testing.T) {
	tests := []struct {
		in      string
		want    BlockTag
		wantErr bool
	}{
		{in: "", want: LatestBlock},
		{in: "latest", want: LatestBlock},
		{in: "Finalized", want: FinalizedBlock},
		{in: "100", want: BlockNumberTag(100)},
		{in: "0x64", want: BlockNumberTag(100)},
		{in: "pending", wantErr: true},
		{in: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBlockTag(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBlockTag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
