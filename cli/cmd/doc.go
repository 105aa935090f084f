// Package cmd implements the rpnsheet subcommands: eval, check, repl and
// init.
//
// Commands receive a [context.Context] carrying the parsed [kong.Context]
// ([WithContext]) and the global evaluation [Settings] ([WithSettings]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
