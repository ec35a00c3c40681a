// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/lightclient"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/mock"
	"github.com/MKhiriev/helios-keeper/internal/validators"
	"github.com/MKhiriev/helios-keeper/internal/workers"
	"github.com/MKhiriev/helios-keeper/models"
)

type heliosDeps struct {
	svc      *heliosService
	registry *SessionRegistry
	builder  *mock.MockBuilder
	journal  *mock.MockSessionJournal
	dataDir  *mock.MockDataDirResolver
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestHeliosService(t *testing.T, ctrl *gomock.Controller, policy config.ReplacePolicy) heliosDeps {
	t.Helper()

	runtime := workers.NewRuntime(4, logger.Nop())
	t.Cleanup(func() { _ = runtime.Shutdown(context.Background()) })

	d := heliosDeps{
		registry: NewSessionRegistry(),
		builder:  mock.NewMockBuilder(ctrl),
		journal:  mock.NewMockSessionJournal(ctrl),
		dataDir:  mock.NewMockDataDirResolver(ctrl),
	}
	cfg := config.Helios{
		SyncTimeout:   time.Second,
		PollInterval:  time.Second,
		ReplacePolicy: policy,
	}
	d.svc = NewHeliosService(d.registry, d.builder, runtime, d.journal, d.dataDir, cfg, logger.Nop()).(*heliosService)
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func mainnetRequest() models.StartRequest {
	return models.StartRequest{RPCURL: "https://eth.example.org", ChainID: 1}
}

// expectHealthyStart wires one successful Start and returns the client.
func expectHealthyStart(ctrl *gomock.Controller, d heliosDeps) *mock.MockClient {
	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).Return(nil)
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	return client
}

func TestHeliosService_StartUnsupportedChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	_, err := d.svc.Start(context.Background(), models.StartRequest{RPCURL: "https://eth.example.org", ChainID: 5})

	require.ErrorIs(t, err, ErrUnsupportedChain)
	assert.Contains(t, err.Error(), "Unsupported chain ID: 5")
	assert.Equal(t, CodeUnsupportedChain, ErrorCode(err))
	assert.False(t, d.registry.Occupied())
}

func TestHeliosService_StartInvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	_, err := d.svc.Start(context.Background(), models.StartRequest{RPCURL: "not a url", ChainID: 1})

	require.ErrorIs(t, err, validators.ErrInvalidRPCURL)
	assert.Equal(t, CodeInvalidRequest, ErrorCode(err))
}

func TestHeliosService_StartDataDirUnresolvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	d.dataDir.EXPECT().ResolveDataDir().Return("", errors.New("permission denied"))

	_, err := d.svc.Start(context.Background(), mainnetRequest())
	require.ErrorIs(t, err, ErrDataDirUnresolvable)
	assert.False(t, d.registry.Occupied())
}

func TestHeliosService_GetLatestBlockBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	_, err := d.svc.GetLatestBlock(context.Background())

	require.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, "Client not started", err.Error())
}

func TestHeliosService_StartAndGetLatestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg lightclient.Config) (lightclient.Client, error) {
		assert.Equal(t, lightclient.Mainnet, cfg.Network)
		assert.Equal(t, "https://eth.example.org", cfg.ExecutionRPC)
		assert.Equal(t, "https://www.lightclientdata.org", cfg.ConsensusRPC)
		assert.Equal(t, "/data/helios", cfg.DataDir)
		return client, nil
	})
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).Return(nil)
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.SessionRecord) error {
		assert.Equal(t, models.SessionRunning, rec.State)
		assert.Equal(t, "mainnet", rec.Network)
		assert.Equal(t, fixedNow, rec.StartedAt)
		return nil
	})

	info, err := d.svc.Start(context.Background(), mainnetRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, uint64(1), info.ChainID)

	block := &models.Block{Number: 0x1234, Hash: common.HexToHash("0xabcd"), GasLimit: models.NewQuantity(30_000_000)}
	// two reads, and no further Start/WaitSynced: reads never re-sync
	client.EXPECT().GetBlockByNumber(gomock.Any(), models.LatestBlock, false).Return(block, nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := d.svc.GetLatestBlock(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "0x1234", got["number"])
		assert.Equal(t, block.Hash.Hex(), got["hash"])
		assert.Equal(t, "0x1c9c380", got["gasLimit"])
	}
}

func TestHeliosService_StartUsesConfiguredDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)
	d.svc.cfg.DefaultExecutionRPC = "http://127.0.0.1:8545"
	d.svc.cfg.DefaultConsensusRPC = "http://127.0.0.1:5052"

	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg lightclient.Config) (lightclient.Client, error) {
		assert.Equal(t, "http://127.0.0.1:8545", cfg.ExecutionRPC)
		assert.Equal(t, "http://127.0.0.1:5052", cfg.ConsensusRPC)
		return client, nil
	})
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).Return(nil)
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.Start(context.Background(), models.StartRequest{ChainID: 1})
	require.NoError(t, err)
}

func TestHeliosService_StartFailures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(ctrl *gomock.Controller, d heliosDeps)
		wantErr  error
		wantCode string
	}{
		{
			name: "build",
			setup: func(_ *gomock.Controller, d heliosDeps) {
				d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial refused"))
			},
			wantErr:  ErrBuildFailed,
			wantCode: CodeBuildFailed,
		},
		{
			name: "start",
			setup: func(ctrl *gomock.Controller, d heliosDeps) {
				client := mock.NewMockClient(ctrl)
				d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
				client.EXPECT().Start(gomock.Any()).Return(lightclient.ErrCheckpointMismatch)
				client.EXPECT().Shutdown(gomock.Any()).Return(nil)
			},
			wantErr:  ErrStartFailed,
			wantCode: CodeStartFailed,
		},
		{
			name: "sync timeout",
			setup: func(ctrl *gomock.Controller, d heliosDeps) {
				client := mock.NewMockClient(ctrl)
				d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
				client.EXPECT().Start(gomock.Any()).Return(nil)
				client.EXPECT().WaitSynced(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				})
				client.EXPECT().Shutdown(gomock.Any()).Return(nil)
			},
			wantErr:  ErrSyncTimeout,
			wantCode: CodeSyncTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := newTestHeliosService(t, ctrl, config.PolicyReplace)

			d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
			tt.setup(ctrl, d)
			d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.SessionRecord) error {
				assert.Equal(t, models.SessionFailed, rec.State)
				assert.NotEmpty(t, rec.Error)
				require.NotNil(t, rec.StoppedAt)
				return nil
			})

			req := mainnetRequest()
			req.SyncTimeout = models.Duration(20 * time.Millisecond)
			_, err := d.svc.Start(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, ErrorCode(err))
			assert.False(t, d.registry.Occupied())
		})
	}
}

func TestHeliosService_StartCallerCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	ctx, cancel := context.WithCancel(context.Background())
	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	})
	client.EXPECT().Shutdown(gomock.Any()).Return(nil)
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.Start(ctx, mainnetRequest())

	require.ErrorIs(t, err, ErrStartFailed)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, d.registry.Occupied())
}

func TestHeliosService_StartAbandonedClientIsShutDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	ctx, cancel := context.WithCancel(context.Background())
	synced := make(chan struct{})
	shutdown := make(chan struct{})

	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		<-synced
		return nil
	})
	client.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(shutdown)
		return nil
	})
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := d.svc.Start(ctx, mainnetRequest())
	require.ErrorIs(t, err, ErrStartFailed)
	require.ErrorIs(t, err, context.Canceled)

	close(synced)
	select {
	case <-shutdown:
	case <-time.After(time.Second):
		t.Fatal("client synced after cancel was not shut down")
	}
	assert.False(t, d.registry.Occupied())
}

func TestHeliosService_SecondStartReplacesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)
	ctx := context.Background()

	first := expectHealthyStart(ctrl, d)
	firstInfo, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	second := expectHealthyStart(ctrl, d)
	first.EXPECT().Shutdown(gomock.Any()).Return(nil)
	d.journal.EXPECT().FinishSession(gomock.Any(), firstInfo.ID, models.SessionReplaced, fixedNow).Return(nil)

	secondInfo, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)
	assert.NotEqual(t, firstInfo.ID, secondInfo.ID)

	block := &models.Block{Number: 7}
	second.EXPECT().GetBlockByNumber(gomock.Any(), models.LatestBlock, false).Return(block, nil)
	got, err := d.svc.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0x7", got["number"])
}

func TestHeliosService_RejectPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReject)
	ctx := context.Background()

	expectHealthyStart(ctrl, d)
	_, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	_, err = d.svc.Start(ctx, mainnetRequest())
	require.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, CodeAlreadyStarted, ErrorCode(err))
}

func TestHeliosService_JournalFailureDoesNotFailStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	client := mock.NewMockClient(ctrl)
	d.dataDir.EXPECT().ResolveDataDir().Return("/data/helios", nil)
	d.builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().Start(gomock.Any()).Return(nil)
	client.EXPECT().WaitSynced(gomock.Any()).Return(nil)
	d.journal.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.Start(context.Background(), mainnetRequest())
	require.NoError(t, err)
	assert.True(t, d.registry.Occupied())
}

func TestHeliosService_GetBlockFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)
	ctx := context.Background()

	client := expectHealthyStart(ctrl, d)
	_, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	t.Run("query failed", func(t *testing.T) {
		client.EXPECT().GetBlockByNumber(gomock.Any(), models.FinalizedBlock, false).Return(nil, lightclient.ErrBlockHashMismatch)

		_, err := d.svc.GetBlock(ctx, models.FinalizedBlock)
		require.ErrorIs(t, err, ErrQueryFailed)
		require.ErrorIs(t, err, lightclient.ErrBlockHashMismatch)
		assert.Equal(t, CodeQueryFailed, ErrorCode(err))
	})

	t.Run("serialization failed", func(t *testing.T) {
		orig := marshalValue
		marshalValue = func(any) ([]byte, error) { return nil, errors.New("boom") }
		defer func() { marshalValue = orig }()

		client.EXPECT().GetBlockByNumber(gomock.Any(), models.LatestBlock, false).Return(&models.Block{}, nil)

		_, err := d.svc.GetLatestBlock(ctx)
		require.ErrorIs(t, err, ErrSerializationFailed)
		assert.Equal(t, CodeSerializationFailed, ErrorCode(err))
	})

	t.Run("by number", func(t *testing.T) {
		tag := models.BlockNumberTag(100)
		client.EXPECT().GetBlockByNumber(gomock.Any(), tag, false).Return(&models.Block{Number: 100}, nil)

		got, err := d.svc.GetBlock(ctx, tag)
		require.NoError(t, err)
		assert.Equal(t, "0x64", got["number"])
	})
}

func TestHeliosService_StopAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)
	ctx := context.Background()

	status, err := d.svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Running)

	require.ErrorIs(t, d.svc.Stop(ctx), ErrNotStarted)

	client := expectHealthyStart(ctrl, d)
	info, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	client.EXPECT().Head().Return(models.HeadInfo{Slot: 42, Synced: true})
	status, err = d.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Running)
	require.NotNil(t, status.Session)
	assert.Equal(t, info.ID, status.Session.ID)
	assert.Equal(t, uint64(42), status.Head.Slot)

	client.EXPECT().Shutdown(gomock.Any()).Return(nil)
	d.journal.EXPECT().FinishSession(gomock.Any(), info.ID, models.SessionStopped, fixedNow).Return(nil)
	require.NoError(t, d.svc.Stop(ctx))

	_, err = d.svc.GetLatestBlock(ctx)
	require.ErrorIs(t, err, ErrNotStarted)
	require.NoError(t, d.svc.Close(ctx))
}

func TestHeliosService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)

	records := []models.SessionRecord{{SessionInfo: models.SessionInfo{ID: "a"}, State: models.SessionStopped}}
	d.journal.EXPECT().ListSessions(gomock.Any(), models.SessionFilter{Limit: 10}).Return(records, nil)

	got, err := d.svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestHeliosService_ConcurrentReadsDuringReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newTestHeliosService(t, ctrl, config.PolicyReplace)
	ctx := context.Background()

	oldHash := common.HexToHash("0x01")
	newHash := common.HexToHash("0x02")

	first := expectHealthyStart(ctrl, d)
	firstInfo, err := d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	var inflight atomic.Int32
	first.EXPECT().GetBlockByNumber(gomock.Any(), models.LatestBlock, false).DoAndReturn(
		func(context.Context, models.BlockTag, bool) (*models.Block, error) {
			inflight.Add(1)
			defer inflight.Add(-1)
			time.Sleep(time.Millisecond)
			return &models.Block{Hash: oldHash}, nil
		}).AnyTimes()
	first.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		assert.Zero(t, inflight.Load(), "old client shut down under a reader")
		return nil
	})
	d.journal.EXPECT().FinishSession(gomock.Any(), firstInfo.ID, models.SessionReplaced, gomock.Any()).Return(nil)

	second := expectHealthyStart(ctrl, d)
	second.EXPECT().GetBlockByNumber(gomock.Any(), models.LatestBlock, false).Return(&models.Block{Hash: newHash}, nil).AnyTimes()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, err := d.svc.GetLatestBlock(ctx)
				if !assert.NoError(t, err) {
					return
				}
				assert.Contains(t, []any{oldHash.Hex(), newHash.Hex()}, got["hash"])
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	_, err = d.svc.Start(ctx, mainnetRequest())
	require.NoError(t, err)

	got, err := d.svc.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, newHash.Hex(), got["hash"])

	close(stop)
	wg.Wait()
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: ErrNotStarted, want: CodeNotStarted},
		{err: errors.Join(errors.New("x"), ErrDataDirUnresolvable), want: CodeDataDirUnresolvable},
		{err: validators.ErrInvalidSyncTimeout, want: CodeInvalidRequest},
		{err: errors.New("anything else"), want: CodeInternal},
		{err: nil, want: CodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err))
	}
}
