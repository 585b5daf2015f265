package server

// Server is what cmd/server drives once the type catalog is loaded: it
// serves the validation API until a termination signal arrives.
type Server interface {
	// RunServer blocks while the API is being served.
	RunServer()

	// Shutdown drains in-flight validations and closes the listener.
	Shutdown()
}
