// Package sqlite implements the storefront storage interfaces on SQLite.
//
// One database file holds both cart snapshots and buyer sessions; the
// schema is created by embedded migrations on Open.
package sqlite
