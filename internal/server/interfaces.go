package server

// Server is the lifecycle of the web front end process.
type Server interface {
	// RunServer serves HTTP and runs the background workers until the
	// process receives SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Shutdown stops accepting requests and drains the open ones.
	Shutdown()
}
