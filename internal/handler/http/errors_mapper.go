package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/helios-keeper/internal/app"
	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/service"
	"github.com/MKhiriev/helios-keeper/internal/utils"
	"github.com/MKhiriev/helios-keeper/models"
)

var errorStatusMap = map[string]int{
	service.CodeUnsupportedChain:    http.StatusBadRequest,
	service.CodeInvalidRequest:      http.StatusBadRequest,
	service.CodeDataDirUnresolvable: http.StatusInternalServerError,
	service.CodeBuildFailed:         http.StatusBadGateway,
	service.CodeStartFailed:         http.StatusBadGateway,
	service.CodeSyncTimeout:         http.StatusGatewayTimeout,
	service.CodeNotStarted:          http.StatusConflict,
	service.CodeAlreadyStarted:      http.StatusConflict,
	service.CodeQueryFailed:         http.StatusBadGateway,
	service.CodeSerializationFailed: http.StatusInternalServerError,
	service.CodeInternal:            http.StatusInternalServerError,
}

func statusFromError(err error) (string, int) {
	code := service.ErrorCode(err)
	switch {
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrInvalidLimit), errors.Is(err, models.ErrInvalidBlockTag):
		code = service.CodeInvalidRequest
	}

	status, ok := errorStatusMap[code]
	if !ok {
		return service.CodeInternal, http.StatusInternalServerError
	}
	return code, status
}

// writeError reports err as a {code, message} body. Internal errors are not
// echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	code, status := statusFromError(err)

	message := err.Error()
	if code == service.CodeInternal {
		message = app.MsgInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", code).Msg("request rejected")
	}

	_, _ = utils.WriteError(w, code, message, status)
}
