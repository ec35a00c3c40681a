// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lightclient

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/helios-keeper/internal/adapter"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/store"
	"github.com/MKhiriev/helios-keeper/internal/workers"
)

type builder struct {
	checkpoints *store.CheckpointStorePool
	runtime     *workers.Runtime
	logger      *logger.Logger

	newConsensus func(baseURL string, timeout time.Duration, log *logger.Logger) (adapter.ConsensusAdapter, error)
	newExecution func(ctx context.Context, url string, timeout time.Duration, log *logger.Logger) (adapter.ExecutionAdapter, error)
	now          func() time.Time
}

// NewBuilder returns a Builder producing clients whose checkpoint files come
// from checkpoints and whose head trackers run on runtime.
func NewBuilder(checkpoints *store.CheckpointStorePool, runtime *workers.Runtime, logger *logger.Logger) Builder {
	return &builder{
		checkpoints:  checkpoints,
		runtime:      runtime,
		logger:       logger,
		newConsensus: adapter.NewHTTPConsensusAdapter,
		newExecution: adapter.NewRPCExecutionAdapter,
		now:          time.Now,
	}
}

func (b *builder) Build(ctx context.Context, cfg Config) (Client, error) {
	if cfg.Network.ChainID == 0 || cfg.Network.Name == "" {
		return nil, fmt.Errorf("%w: network is not set", ErrInvalidConfig)
	}
	if cfg.ExecutionRPC == "" {
		return nil, fmt.Errorf("%w: execution rpc is empty", ErrInvalidConfig)
	}
	if cfg.ConsensusRPC == "" {
		cfg.ConsensusRPC = cfg.Network.DefaultConsensusRPC
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("%w: data dir is empty", ErrInvalidConfig)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Duration(cfg.Network.SecondsPerSlot) * time.Second
	}

	log := b.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("network", cfg.Network.Name)
	})

	consensus, err := b.newConsensus(cfg.ConsensusRPC, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	execution, err := b.newExecution(ctx, cfg.ExecutionRPC, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	checkpoints, err := b.checkpoints.Acquire(cfg.DataDir)
	if err != nil {
		execution.Close()
		return nil, fmt.Errorf("open checkpoint store: %w", err)
	}

	log.Debug().
		Str("execution_rpc", cfg.ExecutionRPC).
		Str("consensus_rpc", cfg.ConsensusRPC).
		Str("data_dir", cfg.DataDir).
		Msg("light client built")

	return newClient(cfg, consensus, execution, checkpoints, b.runtime, log, b.now), nil
}
