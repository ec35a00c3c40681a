package server

import "context"

// Server defines the lifecycle contract for the host transport.
type Server interface {
	// RunServer serves requests until ctx is done or serving fails, then
	// shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
