// Package server wires and runs the web front end.
//
// It owns the HTTP server lifecycle and the background workers that run
// alongside it, including signal handling and graceful shutdown.
package server
