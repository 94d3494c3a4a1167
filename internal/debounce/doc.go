// Package debounce coalesces rapid search input into single emissions.
package debounce
