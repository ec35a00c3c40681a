package http

import (
	"time"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every route except Start, whose duration is
	// governed by the sync timeout.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
