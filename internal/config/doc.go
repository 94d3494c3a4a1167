// Package config loads Verdant's TOML configuration.
//
// The Load function resolves the config path in this order:
//
//  1. An explicitly provided path, when non-empty
//  2. ~/.config/verdant/config.toml
//  3. Hardcoded defaults when the file does not exist
//
// Example config.toml:
//
//	api_base = "127.0.0.1:5000"
//	log_file = "~/.local/share/verdant/debug.log"
//	refresh_every = 30
//
// All fields are optional. Tilde expansion is performed automatically. A
// missing config file is not an error, so Verdant works out of the box
// against a locally running catalog service.
package config
