// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lightclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/helios-keeper/internal/adapter"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/store"
	"github.com/MKhiriev/helios-keeper/internal/workers"
	"github.com/MKhiriev/helios-keeper/models"
)

type client struct {
	cfg         Config
	consensus   adapter.ConsensusAdapter
	execution   adapter.ExecutionAdapter
	checkpoints store.CheckpointStore
	runtime     *workers.Runtime
	logger      *logger.Logger
	now         func() time.Time

	mu         sync.RWMutex
	started    bool
	optimistic models.LightClientHeader
	finalized  models.LightClientHeader

	synced     chan struct{}
	syncedOnce sync.Once

	stopped      atomic.Bool
	stopCh       chan struct{}
	stopOnce     sync.Once
	cancelWorker context.CancelFunc
	workerDone   chan struct{}
}

func newClient(
	cfg Config,
	consensus adapter.ConsensusAdapter,
	execution adapter.ExecutionAdapter,
	checkpoints store.CheckpointStore,
	runtime *workers.Runtime,
	log *logger.Logger,
	now func() time.Time,
) *client {
	return &client{
		cfg:         cfg,
		consensus:   consensus,
		execution:   execution,
		checkpoints: checkpoints,
		runtime:     runtime,
		logger:      log,
		now:         now,
		synced:      make(chan struct{}),
		stopCh:      make(chan struct{}),
	}
}

func (c *client) Start(ctx context.Context) error {
	if c.stopped.Load() {
		return ErrClientStopped
	}

	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if started {
		return nil
	}

	chainID, err := c.execution.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("query execution chain id: %w", err)
	}
	if chainID != c.cfg.Network.ChainID {
		return fmt.Errorf("%w: want %d, execution rpc serves %d", ErrChainMismatch, c.cfg.Network.ChainID, chainID)
	}

	bootstrap, checkpoint, err := c.bootstrap(ctx)
	if err != nil {
		return err
	}
	if bootstrap.Header.Execution == nil {
		return ErrNoExecutionPayload
	}

	c.mu.Lock()
	c.optimistic = bootstrap.Header
	c.finalized = bootstrap.Header
	c.started = true
	c.mu.Unlock()

	c.saveCheckpoint(checkpoint)
	c.logger.Info().
		Uint64("slot", uint64(bootstrap.Header.Beacon.Slot)).
		Str("checkpoint", checkpoint.Hex()).
		Msg("light client bootstrapped")

	c.poll(ctx)

	workerCtx, cancel := context.WithCancel(context.Background())
	c.cancelWorker = cancel
	c.workerDone = make(chan struct{})
	if err := c.runtime.Go(workerCtx, workers.WorkerFunc(c.trackHeads)); err != nil {
		cancel()
		close(c.workerDone)
		return fmt.Errorf("start head tracker: %w", err)
	}

	return nil
}

// bootstrap resolves the checkpoint (stored first, then the node's latest
// finalized root) and fetches a bootstrap matching it.
func (c *client) bootstrap(ctx context.Context) (models.LightClientBootstrap, common.Hash, error) {
	checkpoint, stored, err := c.checkpoints.LoadCheckpoint(c.cfg.Network.Name)
	if err != nil {
		c.logger.Warn().Err(err).Msg("stored checkpoint unreadable, falling back to finality update")
		stored = false
	}

	if !stored {
		if checkpoint, err = c.latestFinalizedRoot(ctx); err != nil {
			return models.LightClientBootstrap{}, common.Hash{}, err
		}
	}

	bootstrap, err := c.consensus.Bootstrap(ctx, checkpoint)
	if err != nil && stored && errors.Is(err, adapter.ErrNotFound) {
		// the node pruned our checkpoint; start over from its finalized head
		c.logger.Warn().Str("checkpoint", checkpoint.Hex()).Msg("stored checkpoint unavailable on consensus rpc")
		if checkpoint, err = c.latestFinalizedRoot(ctx); err != nil {
			return models.LightClientBootstrap{}, common.Hash{}, err
		}
		bootstrap, err = c.consensus.Bootstrap(ctx, checkpoint)
	}
	if err != nil {
		return models.LightClientBootstrap{}, common.Hash{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	if got := headerRoot(bootstrap.Header.Beacon); got != checkpoint {
		return models.LightClientBootstrap{}, common.Hash{}, fmt.Errorf("%w: want %s, got %s", ErrCheckpointMismatch, checkpoint.Hex(), got.Hex())
	}

	return bootstrap, checkpoint, nil
}

func (c *client) latestFinalizedRoot(ctx context.Context) (common.Hash, error) {
	update, err := c.consensus.FinalityUpdate(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetch finality update: %w", err)
	}
	return headerRoot(update.FinalizedHeader.Beacon), nil
}

func (c *client) saveCheckpoint(root common.Hash) {
	if err := c.checkpoints.SaveCheckpoint(c.cfg.Network.Name, root); err != nil {
		c.logger.Warn().Err(err).Msg("error saving checkpoint")
	}
}

func (c *client) trackHeads(ctx context.Context) {
	defer close(c.workerDone)

	t := time.NewTicker(c.cfg.PollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.poll(ctx)
		}
	}
}

// poll advances the heads from the latest updates. Failures are logged
// and retried on the next tick.
func (c *client) poll(ctx context.Context) {
	if optimistic, err := c.consensus.OptimisticUpdate(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("optimistic update failed")
	} else {
		c.advanceOptimistic(optimistic.AttestedHeader)
	}

	if finality, err := c.consensus.FinalityUpdate(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("finality update failed")
	} else if c.advanceFinalized(finality.FinalizedHeader) {
		c.advanceOptimistic(finality.AttestedHeader)
		c.saveCheckpoint(headerRoot(finality.FinalizedHeader.Beacon))
	}

	c.checkSynced()
}

func (c *client) advanceOptimistic(h models.LightClientHeader) bool {
	if h.Execution == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h.Beacon.Slot <= c.optimistic.Beacon.Slot {
		return false
	}
	c.optimistic = h
	return true
}

func (c *client) advanceFinalized(h models.LightClientHeader) bool {
	if h.Execution == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h.Beacon.Slot <= c.finalized.Beacon.Slot {
		return false
	}
	c.finalized = h
	if h.Beacon.Slot > c.optimistic.Beacon.Slot {
		c.optimistic = h
	}
	return true
}

func (c *client) isSynced() bool {
	c.mu.RLock()
	slot := uint64(c.optimistic.Beacon.Slot)
	started := c.started
	c.mu.RUnlock()

	return started && slot+c.cfg.Network.SyncTolerance >= c.cfg.Network.SlotAt(c.now())
}

func (c *client) checkSynced() {
	if c.isSynced() {
		c.syncedOnce.Do(func() {
			c.logger.Info().Msg("light client synced")
			close(c.synced)
		})
	}
}

func (c *client) WaitSynced(ctx context.Context) error {
	if c.stopped.Load() {
		return ErrClientStopped
	}
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if !started {
		return ErrClientNotStarted
	}

	select {
	case <-c.synced:
		return nil
	case <-c.stopCh:
		return ErrClientStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *client) GetBlockByNumber(ctx context.Context, tag models.BlockTag, fullTx bool) (*models.Block, error) {
	if c.stopped.Load() {
		return nil, ErrClientStopped
	}

	c.mu.RLock()
	started := c.started
	optimistic := c.optimistic
	finalized := c.finalized
	c.mu.RUnlock()
	if !started {
		return nil, ErrClientNotStarted
	}

	var (
		number   uint64
		expected *common.Hash
	)
	switch {
	case tag.IsLatest():
		number = uint64(optimistic.Execution.BlockNumber)
		expected = &optimistic.Execution.BlockHash
	case tag.IsFinalized():
		number = uint64(finalized.Execution.BlockNumber)
		expected = &finalized.Execution.BlockHash
	default:
		number, _ = tag.Number()
		head := uint64(optimistic.Execution.BlockNumber)
		if number > head {
			return nil, fmt.Errorf("%w: requested %d, head %d", ErrBlockNotAvailable, number, head)
		}
		switch number {
		case head:
			expected = &optimistic.Execution.BlockHash
		case uint64(finalized.Execution.BlockNumber):
			expected = &finalized.Execution.BlockHash
		}
	}

	block, err := c.execution.BlockByNumber(ctx, hexutil.EncodeUint64(number), fullTx)
	if err != nil {
		return nil, err
	}

	if expected != nil && block.Hash != *expected {
		return nil, fmt.Errorf("%w: block %d: want %s, got %s", ErrBlockHashMismatch, number, expected.Hex(), block.Hash.Hex())
	}

	return block, nil
}

func (c *client) Head() models.HeadInfo {
	c.mu.RLock()
	optimistic := c.optimistic
	finalized := c.finalized
	c.mu.RUnlock()

	info := models.HeadInfo{
		Slot:          uint64(optimistic.Beacon.Slot),
		FinalizedSlot: uint64(finalized.Beacon.Slot),
		Synced:        c.isSynced(),
	}
	if optimistic.Execution != nil {
		info.BlockNumber = uint64(optimistic.Execution.BlockNumber)
		info.BlockHash = optimistic.Execution.BlockHash.Hex()
	}
	if finalized.Execution != nil {
		info.FinalizedBlockNumber = uint64(finalized.Execution.BlockNumber)
	}
	return info
}

func (c *client) Shutdown(ctx context.Context) error {
	var err error
	c.stopOnce.Do(func() {
		c.stopped.Store(true)
		close(c.stopCh)

		if c.cancelWorker != nil {
			c.cancelWorker()
			select {
			case <-c.workerDone:
			case <-ctx.Done():
				err = fmt.Errorf("wait head tracker: %w", ctx.Err())
			}
		}

		c.execution.Close()
		err = errors.Join(err, c.checkpoints.Close())
		c.logger.Info().Msg("light client shut down")
	})
	return err
}
