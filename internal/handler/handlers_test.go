package handler

import (
	"testing"

	"github.com/MKhiriev/helios-keeper/internal/config"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8787"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
