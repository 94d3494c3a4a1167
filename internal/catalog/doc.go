// Package catalog implements the HTTP client for the plant catalog API.
package catalog
