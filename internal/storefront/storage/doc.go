// Package storage defines the persistence interfaces for the storefront.
//
// It provides a high-level abstraction for storing cart snapshots and buyer
// sessions. Implementations of these interfaces (SQLite, Redis, in-memory)
// can be found in subpackages.
package storage
