package server

import "context"

// Server is the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully.
	RunServer(ctx context.Context) error
}
