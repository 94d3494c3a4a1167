// Package state owns the in-memory catalog collection shown by the UI.
package state
