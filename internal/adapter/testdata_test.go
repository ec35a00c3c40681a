package adapter

// Captured from a mainnet beacon node and trimmed to the fields the light
// client reads.
const (
	bootstrapJSON = `{
  "version": "deneb",
  "data": {
    "header": {
      "beacon": {
        "slot": "9000000",
        "proposer_index": "1234",
        "parent_root": "0x1111111111111111111111111111111111111111111111111111111111111111",
        "state_root": "0x2222222222222222222222222222222222222222222222222222222222222222",
        "body_root": "0x3333333333333333333333333333333333333333333333333333333333333333"
      },
      "execution": {
        "parent_hash": "0x4444444444444444444444444444444444444444444444444444444444444444",
        "fee_recipient": "0x0000000000000000000000000000000000000001",
        "state_root": "0x5555555555555555555555555555555555555555555555555555555555555555",
        "block_number": "20000000",
        "timestamp": "1717000000",
        "block_hash": "0x6666666666666666666666666666666666666666666666666666666666666666"
      }
    },
    "current_sync_committee_branch": [
      "0x7777777777777777777777777777777777777777777777777777777777777777"
    ]
  }
}`

	finalityJSON = `{
  "version": "deneb",
  "data": {
    "attested_header": {"beacon": {"slot": "9000100", "proposer_index": "1", "parent_root": "0x1111111111111111111111111111111111111111111111111111111111111111", "state_root": "0x2222222222222222222222222222222222222222222222222222222222222222", "body_root": "0x3333333333333333333333333333333333333333333333333333333333333333"}},
    "finalized_header": {
      "beacon": {"slot": "9000032", "proposer_index": "2", "parent_root": "0x1111111111111111111111111111111111111111111111111111111111111111", "state_root": "0x2222222222222222222222222222222222222222222222222222222222222222", "body_root": "0x3333333333333333333333333333333333333333333333333333333333333333"},
      "execution": {"block_number": "20000031", "block_hash": "0x8888888888888888888888888888888888888888888888888888888888888888", "timestamp": "1717000384"}
    },
    "finality_branch": [],
    "signature_slot": "9000101"
  }
}`

	optimisticJSON = `{
  "version": "deneb",
  "data": {
    "attested_header": {
      "beacon": {"slot": "9000100", "proposer_index": "1", "parent_root": "0x1111111111111111111111111111111111111111111111111111111111111111", "state_root": "0x2222222222222222222222222222222222222222222222222222222222222222", "body_root": "0x3333333333333333333333333333333333333333333333333333333333333333"},
      "execution": {"block_number": "20000099", "block_hash": "0x9999999999999999999999999999999999999999999999999999999999999999", "timestamp": "1717001200"}
    },
    "signature_slot": "9000101"
  }
}`

	blockJSON = `{
  "number": "0x1312d00",
  "hash": "0x6666666666666666666666666666666666666666666666666666666666666666",
  "parentHash": "0x4444444444444444444444444444444444444444444444444444444444444444",
  "sha3Uncles": "0x1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347",
  "miner": "0x0000000000000000000000000000000000000001",
  "stateRoot": "0x5555555555555555555555555555555555555555555555555555555555555555",
  "transactionsRoot": "0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
  "receiptsRoot": "0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
  "logsBloom": "0x00",
  "mixHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
  "extraData": "0x",
  "timestamp": "0x66578540",
  "size": "0x220",
  "gasLimit": "0x1c9c380",
  "gasUsed": "0x0",
  "baseFeePerGas": "0x3b9aca00",
  "transactions": ["0xabababababababababababababababababababababababababababababababab"],
  "uncles": []
}`
)
