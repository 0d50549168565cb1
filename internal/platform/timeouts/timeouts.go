// Package timeouts defines shared timeout constants used across the
// storefront. Centralizing these values prevents drift between service
// boundaries and makes the durations discoverable.
package timeouts

import "time"

// BackendRequest caps the time allowed for a single REST call from the
// storefront to the marketplace backend.
const BackendRequest = 10 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
