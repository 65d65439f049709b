// Package server wires and runs the application runtime.
//
// It orchestrates the HTTP server and the background scheduled-message
// poller: startup, signal handling, and graceful shutdown of both.
package server
