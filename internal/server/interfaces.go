package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the stub API server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Run serves until ctx is done and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()

	// Addr returns the listening address once the server is bound.
	Addr() net.Addr
}
