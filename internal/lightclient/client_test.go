package lightclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/helios-keeper/internal/adapter"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/workers"
	"github.com/MKhiriev/helios-keeper/models"
)

type fakeConsensus struct {
	mu          sync.Mutex
	bootstraps  map[common.Hash]models.LightClientBootstrap
	finality    models.LightClientFinalityUpdate
	optimistic  models.LightClientOptimisticUpdate
	finalityErr error
	bootRoots   []common.Hash
}

func (f *fakeConsensus) Bootstrap(_ context.Context, root common.Hash) (models.LightClientBootstrap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bootRoots = append(f.bootRoots, root)
	b, ok := f.bootstraps[root]
	if !ok {
		return models.LightClientBootstrap{}, adapter.ErrNotFound
	}
	return b, nil
}

func (f *fakeConsensus) FinalityUpdate(context.Context) (models.LightClientFinalityUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finality, f.finalityErr
}

func (f *fakeConsensus) OptimisticUpdate(context.Context) (models.LightClientOptimisticUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.optimistic, nil
}

type fakeExecution struct {
	chainID uint64
	blocks  map[string]*models.Block
	closed  bool
}

func (f *fakeExecution) ChainID(context.Context) (uint64, error) { return f.chainID, nil }

func (f *fakeExecution) BlockByNumber(_ context.Context, number string, _ bool) (*models.Block, error) {
	b, ok := f.blocks[number]
	if !ok {
		return nil, adapter.ErrBlockNotFound
	}
	return b, nil
}

func (f *fakeExecution) Close() { f.closed = true }

type memCheckpoints struct {
	mu     sync.Mutex
	roots  map[string]common.Hash
	closed bool
}

func (m *memCheckpoints) LoadCheckpoint(network string) (common.Hash, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	root, ok := m.roots[network]
	return root, ok, nil
}

func (m *memCheckpoints) SaveCheckpoint(network string, root common.Hash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roots[network] = root
	return nil
}

func (m *memCheckpoints) Close() error {
	m.closed = true
	return nil
}

func header(slot, blockNumber uint64, blockHash common.Hash) models.LightClientHeader {
	return models.LightClientHeader{
		Beacon: models.BeaconBlockHeader{
			Slot:          models.Decimal(slot),
			ProposerIndex: 7,
			BodyRoot:      common.BytesToHash([]byte{byte(slot)}),
		},
		Execution: &models.ExecutionPayloadHeader{
			BlockNumber: models.Decimal(blockNumber),
			BlockHash:   blockHash,
		},
	}
}

type fixture struct {
	consensus   *fakeConsensus
	execution   *fakeExecution
	checkpoints *memCheckpoints
	runtime     *workers.Runtime
	finalized   models.LightClientHeader
	head        models.LightClientHeader
	client      *client
}

const headSlot = 9_000_000

func newFixture(t *testing.T, wallSlot uint64) *fixture {
	t.Helper()

	finalizedHash := common.HexToHash("0xf1")
	headHash := common.HexToHash("0xa1")
	finalized := header(headSlot-64, 20_000_000, finalizedHash)
	head := header(headSlot, 20_000_064, headHash)

	consensus := &fakeConsensus{
		bootstraps: map[common.Hash]models.LightClientBootstrap{
			headerRoot(finalized.Beacon): {Header: finalized},
		},
		finality: models.LightClientFinalityUpdate{
			AttestedHeader:  header(headSlot-60, 20_000_004, common.HexToHash("0xb1")),
			FinalizedHeader: finalized,
		},
		optimistic: models.LightClientOptimisticUpdate{AttestedHeader: head},
	}
	execution := &fakeExecution{
		chainID: Mainnet.ChainID,
		blocks: map[string]*models.Block{
			hexutil.EncodeUint64(20_000_064): {Number: 20_000_064, Hash: headHash},
			hexutil.EncodeUint64(20_000_000): {Number: 20_000_000, Hash: finalizedHash},
			hexutil.EncodeUint64(19_999_999): {Number: 19_999_999, Hash: common.HexToHash("0xee")},
		},
	}
	checkpoints := &memCheckpoints{roots: map[string]common.Hash{}}
	runtime := workers.NewRuntime(2, logger.Nop())
	t.Cleanup(func() { _ = runtime.Shutdown(context.Background()) })

	now := func() time.Time {
		return Mainnet.GenesisTime.Add(time.Duration(wallSlot*Mainnet.SecondsPerSlot) * time.Second)
	}
	cfg := Config{
		Network:      Mainnet,
		ExecutionRPC: "http://execution",
		ConsensusRPC: "http://consensus",
		DataDir:      t.TempDir(),
		PollInterval: time.Hour,
	}

	return &fixture{
		consensus:   consensus,
		execution:   execution,
		checkpoints: checkpoints,
		runtime:     runtime,
		finalized:   finalized,
		head:        head,
		client:      newClient(cfg, consensus, execution, checkpoints, runtime, logger.Nop(), now),
	}
}

func TestClient_StartAndSync(t *testing.T) {
	f := newFixture(t, headSlot+2)
	ctx := context.Background()

	require.NoError(t, f.client.Start(ctx))
	require.NoError(t, f.client.WaitSynced(ctx))

	head := f.client.Head()
	assert.Equal(t, uint64(headSlot), head.Slot)
	assert.Equal(t, uint64(20_000_064), head.BlockNumber)
	assert.Equal(t, uint64(20_000_000), head.FinalizedBlockNumber)
	assert.True(t, head.Synced)

	assert.Equal(t, headerRoot(f.finalized.Beacon), f.checkpoints.roots[Mainnet.Name])
}

func TestClient_StartChainMismatch(t *testing.T) {
	f := newFixture(t, headSlot)
	f.execution.chainID = 5

	err := f.client.Start(context.Background())
	require.ErrorIs(t, err, ErrChainMismatch)
	assert.Empty(t, f.consensus.bootRoots)
}

func TestClient_StartFallsBackWhenStoredCheckpointPruned(t *testing.T) {
	f := newFixture(t, headSlot)
	stale := common.HexToHash("0x0bad")
	f.checkpoints.roots[Mainnet.Name] = stale

	require.NoError(t, f.client.Start(context.Background()))
	assert.Equal(t, []common.Hash{stale, headerRoot(f.finalized.Beacon)}, f.consensus.bootRoots)
	assert.Equal(t, headerRoot(f.finalized.Beacon), f.checkpoints.roots[Mainnet.Name])
}

func TestClient_StartCheckpointMismatch(t *testing.T) {
	f := newFixture(t, headSlot)
	root := headerRoot(f.finalized.Beacon)
	forged := f.finalized
	forged.Beacon.StateRoot = common.HexToHash("0xdead")
	f.consensus.bootstraps[root] = models.LightClientBootstrap{Header: forged}

	err := f.client.Start(context.Background())
	require.ErrorIs(t, err, ErrCheckpointMismatch)
}

func TestClient_StartFinalityUnavailable(t *testing.T) {
	f := newFixture(t, headSlot)
	f.consensus.finalityErr = adapter.ErrServiceUnavailable

	err := f.client.Start(context.Background())
	require.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

func TestClient_WaitSyncedHonoursContext(t *testing.T) {
	f := newFixture(t, headSlot+100)
	require.NoError(t, f.client.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := f.client.WaitSynced(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.client.Head().Synced)
}

func TestClient_GetBlockByNumber(t *testing.T) {
	f := newFixture(t, headSlot)
	ctx := context.Background()

	_, err := f.client.GetBlockByNumber(ctx, models.LatestBlock, false)
	require.ErrorIs(t, err, ErrClientNotStarted)

	require.NoError(t, f.client.Start(ctx))

	tests := []struct {
		name    string
		tag     models.BlockTag
		want    uint64
		wantErr error
	}{
		{name: "latest", tag: models.LatestBlock, want: 20_000_064},
		{name: "finalized", tag: models.FinalizedBlock, want: 20_000_000},
		{name: "number below head", tag: models.BlockNumberTag(19_999_999), want: 19_999_999},
		{name: "number above head", tag: models.BlockNumberTag(20_000_065), wantErr: ErrBlockNotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := f.client.GetBlockByNumber(ctx, tt.tag, false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, uint64(block.Number))
		})
	}
}

func TestClient_GetBlockByNumberHashMismatch(t *testing.T) {
	f := newFixture(t, headSlot)
	ctx := context.Background()
	require.NoError(t, f.client.Start(ctx))

	f.execution.blocks[hexutil.EncodeUint64(20_000_064)] = &models.Block{Number: 20_000_064, Hash: common.HexToHash("0x666")}

	_, err := f.client.GetBlockByNumber(ctx, models.LatestBlock, false)
	require.ErrorIs(t, err, ErrBlockHashMismatch)
}

func TestClient_Shutdown(t *testing.T) {
	f := newFixture(t, headSlot)
	ctx := context.Background()
	require.NoError(t, f.client.Start(ctx))

	require.NoError(t, f.client.Shutdown(ctx))
	require.NoError(t, f.client.Shutdown(ctx))

	assert.True(t, f.execution.closed)
	assert.True(t, f.checkpoints.closed)

	_, err := f.client.GetBlockByNumber(ctx, models.LatestBlock, false)
	require.ErrorIs(t, err, ErrClientStopped)
	require.ErrorIs(t, f.client.WaitSynced(ctx), ErrClientStopped)
	require.ErrorIs(t, f.client.Start(ctx), ErrClientStopped)
}

func TestClient_ShutdownUnblocksWaitSynced(t *testing.T) {
	f := newFixture(t, headSlot+100)
	require.NoError(t, f.client.Start(context.Background()))

	errCh := make(chan error, 1)
	go func() { errCh <- f.client.WaitSynced(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, f.client.Shutdown(context.Background()))

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, ErrClientStopped))
	case <-time.After(time.Second):
		t.Fatal("WaitSynced did not return after Shutdown")
	}
}
