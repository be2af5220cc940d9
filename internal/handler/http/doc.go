// Package http implements the REST API of the nutrition tracker.
//
// It wires the chi router, decodes requests, resolves the cookie session
// into an actor and renders service results and errors as JSON. Tracing,
// access logging and gzip compression run as middleware in front of every
// route.
package http
