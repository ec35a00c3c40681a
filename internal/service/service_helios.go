// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/lightclient"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/store"
	"github.com/MKhiriev/helios-keeper/internal/utils"
	"github.com/MKhiriev/helios-keeper/internal/validators"
	"github.com/MKhiriev/helios-keeper/internal/workers"
	"github.com/MKhiriev/helios-keeper/models"
)

// retireTimeout bounds how long a displaced or stopped session may take to
// drain its readers and shut down.
const retireTimeout = 30 * time.Second

var marshalValue = json.Marshal

type heliosService struct {
	registry  *SessionRegistry
	builder   lightclient.Builder
	runtime   *workers.Runtime
	journal   store.SessionJournal
	dataDir   DataDirResolver
	validator validators.Validator
	ids       *utils.UUIDGenerator
	cfg       config.Helios

	logger *logger.Logger
	now    func() time.Time
}

func NewHeliosService(
	registry *SessionRegistry,
	builder lightclient.Builder,
	runtime *workers.Runtime,
	journal store.SessionJournal,
	dataDir DataDirResolver,
	cfg config.Helios,
	logger *logger.Logger,
) HeliosService {
	return &heliosService{
		registry:  registry,
		builder:   builder,
		runtime:   runtime,
		journal:   journal,
		dataDir:   dataDir,
		validator: validators.NewStartRequestValidator(),
		ids:       utils.NewUUIDGenerator(),
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *heliosService) Start(ctx context.Context, req models.StartRequest) (models.SessionInfo, error) {
	network, err := lightclient.NetworkByChainID(req.ChainID)
	if err != nil {
		return models.SessionInfo{}, err
	}

	if req.RPCURL == "" {
		req.RPCURL = s.cfg.DefaultExecutionRPC
	}
	if req.ConsensusRPC == "" {
		req.ConsensusRPC = s.cfg.DefaultConsensusRPC
	}
	if req.ConsensusRPC == "" {
		req.ConsensusRPC = network.DefaultConsensusRPC
	}
	if err = s.validator.Validate(ctx, req); err != nil {
		return models.SessionInfo{}, err
	}

	dataDir, err := s.dataDir.ResolveDataDir()
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("%w: %w", ErrDataDirUnresolvable, err)
	}

	if s.cfg.ReplacePolicy == config.PolicyReject && s.registry.Occupied() {
		return models.SessionInfo{}, ErrAlreadyStarted
	}

	info := models.SessionInfo{
		ID:           s.ids.Generate(),
		ChainID:      network.ChainID,
		Network:      network.Name,
		ExecutionRPC: req.RPCURL,
		ConsensusRPC: req.ConsensusRPC,
		DataDir:      dataDir,
	}
	log := s.logger.WithSession(info.ID)

	timeout := req.SyncTimeout.Std()
	if timeout <= 0 {
		timeout = s.cfg.SyncTimeout
	}

	log.Info().
		Uint64("chain_id", info.ChainID).
		Str("execution_rpc", info.ExecutionRPC).
		Str("consensus_rpc", info.ConsensusRPC).
		Dur("sync_timeout", timeout).
		Msg("starting light client")

	cfg := lightclient.Config{
		Network:        network,
		ExecutionRPC:   info.ExecutionRPC,
		ConsensusRPC:   info.ConsensusRPC,
		DataDir:        dataDir,
		PollInterval:   s.cfg.PollInterval,
		RequestTimeout: s.cfg.RequestTimeout,
	}
	client, err := workers.DoWithRelease(ctx, s.runtime, func(ctx context.Context) (lightclient.Client, error) {
		return s.startClient(ctx, cfg, timeout)
	}, func(client lightclient.Client) {
		log.Warn().Msg("light client synced after the caller gave up, shutting it down")
		s.discard(ctx, client)
	})
	if err != nil {
		if !isStartError(err) {
			err = fmt.Errorf("%w: %w", ErrStartFailed, err)
		}
		log.Error().Err(err).Msg("light client failed to start")
		s.journalFailure(ctx, info, err)
		return models.SessionInfo{}, err
	}

	info.StartedAt = s.now().UTC()
	sess := newSession(client, info)

	if s.cfg.ReplacePolicy == config.PolicyReject {
		if err = s.registry.InstallIfEmpty(sess); err != nil {
			s.discard(ctx, client)
			s.journalFailure(ctx, info, err)
			return models.SessionInfo{}, err
		}
	} else if prev := s.registry.Install(sess); prev != nil {
		s.retire(ctx, prev, models.SessionReplaced)
	}

	if err = s.journal.SaveSession(ctx, models.SessionRecord{SessionInfo: info, State: models.SessionRunning}); err != nil {
		log.Warn().Err(err).Msg("error journaling session")
	}

	log.Info().Msg("light client session installed")
	return info, nil
}

// startClient runs build, start and wait-synced. The client is shut down on
// any failure after it was built.
func (s *heliosService) startClient(ctx context.Context, cfg lightclient.Config, timeout time.Duration) (lightclient.Client, error) {
	client, err := s.builder.Build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	if err = client.Start(ctx); err != nil {
		s.discard(ctx, client)
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	syncCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = client.WaitSynced(syncCtx); err != nil {
		s.discard(ctx, client)
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: after %s: %w", ErrSyncTimeout, timeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	return client, nil
}

func isStartError(err error) bool {
	return errors.Is(err, ErrBuildFailed) || errors.Is(err, ErrStartFailed) || errors.Is(err, ErrSyncTimeout)
}

func (s *heliosService) discard(ctx context.Context, client lightclient.Client) {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), retireTimeout)
	defer cancel()

	if err := client.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn().Err(err).Msg("error shutting down discarded light client")
	}
}

func (s *heliosService) retire(ctx context.Context, prev *session, state models.SessionState) {
	log := s.logger.WithSession(prev.info.ID)

	retireCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), retireTimeout)
	defer cancel()

	if err := prev.retire(retireCtx); err != nil {
		log.Warn().Err(err).Msg("error retiring session")
	}
	if err := s.journal.FinishSession(retireCtx, prev.info.ID, state, s.now().UTC()); err != nil {
		log.Warn().Err(err).Msg("error journaling session end")
	}

	log.Info().Str("state", string(state)).Msg("light client session retired")
}

func (s *heliosService) journalFailure(ctx context.Context, info models.SessionInfo, cause error) {
	now := s.now().UTC()
	info.StartedAt = now

	rec := models.SessionRecord{
		SessionInfo: info,
		State:       models.SessionFailed,
		Error:       cause.Error(),
		StoppedAt:   &now,
	}
	if err := s.journal.SaveSession(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.WithSession(info.ID).Warn().Err(err).Msg("error journaling failed session")
	}
}

func (s *heliosService) GetLatestBlock(ctx context.Context) (map[string]any, error) {
	return s.GetBlock(ctx, models.LatestBlock)
}

func (s *heliosService) GetBlock(ctx context.Context, tag models.BlockTag) (map[string]any, error) {
	var out map[string]any

	err := s.registry.WithHandle(ctx, func(ctx context.Context, sess *session) error {
		block, err := workers.Do(ctx, s.runtime, func(ctx context.Context) (*models.Block, error) {
			return sess.client.GetBlockByNumber(ctx, tag, false)
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrQueryFailed, err)
		}

		if out, err = toStructured(block); err != nil {
			return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// toStructured re-encodes v as the generic JSON value tree.
func toStructured(v any) (map[string]any, error) {
	raw, err := marshalValue(v)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *heliosService) Stop(ctx context.Context) error {
	prev := s.registry.Remove()
	if prev == nil {
		return ErrNotStarted
	}

	s.retire(ctx, prev, models.SessionStopped)
	return nil
}

func (s *heliosService) Status(ctx context.Context) (models.SessionStatus, error) {
	var status models.SessionStatus

	err := s.registry.WithHandle(ctx, func(_ context.Context, sess *session) error {
		info := sess.info
		head := sess.client.Head()
		status = models.SessionStatus{Running: true, Session: &info, Head: &head}
		return nil
	})
	if errors.Is(err, ErrNotStarted) {
		return models.SessionStatus{}, nil
	}
	return status, err
}

func (s *heliosService) History(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	return s.journal.ListSessions(ctx, models.SessionFilter{Limit: limit})
}

func (s *heliosService) Close(ctx context.Context) error {
	if err := s.Stop(ctx); err != nil && !errors.Is(err, ErrNotStarted) {
		return err
	}
	return nil
}
