package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/logger"
)

type appInfoService struct {
	name    string
	version string
}

// NewAppInfoService reports the configured build version. A blank version
// is a configuration error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("app", cfg.Name).Str("version", version).Msg("app info service created")

	return &appInfoService{
		name:    cfg.Name,
		version: version,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
