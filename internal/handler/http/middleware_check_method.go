// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/helios-keeper/internal/utils"
)

const codeNotFound = "not_found"

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. chi
// calls it only when the path matches a route but the method is not
// registered for it; it answers 404 instead of 405, so the surface does not
// reveal which methods a route accepts.
//
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteError(w, codeNotFound, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
