// Package http implements the host RPC surface over HTTP.
//
// Routes live under /api/helios and map one-to-one onto HeliosService
// operations. Failures are written as {"code", "message"} JSON bodies whose
// code is the service error variant. Middleware attaches a trace id and a
// request-scoped logger, logs every request and recovers panics.
package http
