package server

// Server is the lifecycle contract of the transport server.
// RunServer blocks until shutdown is requested; Shutdown stops listeners and
// releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
