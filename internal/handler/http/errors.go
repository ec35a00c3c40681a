// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/helios-keeper/internal/app"
)

// Request decoding errors. They are reported with the invalid_request code.
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidLimit is returned when the sessions limit query parameter
	// is not a positive integer.
	ErrInvalidLimit = errors.New(app.MsgInvalidLimit)
)
