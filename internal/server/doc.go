// Package server runs the simulator's HTTP server until a stop signal
// arrives, then shuts it down gracefully.
package server
