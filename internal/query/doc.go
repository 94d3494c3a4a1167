// Package query models search and filter intent for the catalog listing.
package query
