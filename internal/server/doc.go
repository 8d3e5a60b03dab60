// Package server runs the stub goals API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
