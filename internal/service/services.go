package service

import (
	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/lightclient"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/store"
	"github.com/MKhiriev/helios-keeper/internal/workers"
)

type Services struct {
	HeliosService  HeliosService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	registry *SessionRegistry,
	runtime *workers.Runtime,
	dataDir DataDirResolver,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	builder := lightclient.NewBuilder(storages.Checkpoints, runtime, logger)

	return &Services{
		HeliosService:  NewHeliosService(registry, builder, runtime, storages.SessionJournal, dataDir, cfg.Helios, logger),
		AppInfoService: appInfo,
	}, nil
}
