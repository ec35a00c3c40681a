package service

import (
	"context"

	"github.com/MKhiriev/helios-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// HeliosService owns the single light-client session of the process.
type HeliosService interface {
	// Start builds a client for req, waits for it to sync and installs it.
	Start(ctx context.Context, req models.StartRequest) (models.SessionInfo, error)

	// GetLatestBlock reads the latest block from the installed client and
	// returns it as a generic structured value.
	GetLatestBlock(ctx context.Context) (map[string]any, error)
	GetBlock(ctx context.Context, tag models.BlockTag) (map[string]any, error)

	// Stop removes the installed session and shuts it down once in-flight
	// reads complete.
	Stop(ctx context.Context) error

	Status(ctx context.Context) (models.SessionStatus, error)
	History(ctx context.Context, limit int) ([]models.SessionRecord, error)

	// Close stops the running session, if any, at process shutdown.
	Close(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DataDirResolver supplies the directory light clients keep their state in.
// Implementations create the directory when missing.
type DataDirResolver interface {
	ResolveDataDir() (string, error)
}
