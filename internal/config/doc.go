// Package config loads, normalizes, and validates the TOML configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the file from an explicit path, from
// ~/.config/paddock/config.toml, or from a project-local paddock.toml.
package config
