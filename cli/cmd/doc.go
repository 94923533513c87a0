// Package cmd provides the render, repl, and version subcommands for the
// sval command-line interface.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file (without extension).
	ConfigIdentifier = "config"
)
