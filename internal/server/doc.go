// Package server implements verdantd, the in-memory development catalog
// service. It exposes the same HTTP contract the Verdant TUI consumes, so
// the UI can be exercised without a production backend.
package server
