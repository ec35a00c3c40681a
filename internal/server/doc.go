// Package server runs the host's HTTP transport.
//
// It owns the listener lifecycle: serving until the run context is done,
// then shutting down gracefully within the configured timeout.
package server
