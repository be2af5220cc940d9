// Package server runs the HTTP transport of the nutrition tracker and shuts
// it down gracefully when the run context is cancelled.
package server
