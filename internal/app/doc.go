// Package app loads configuration and wires application dependencies for the CLI.
//
// Config values come from defaults, then the environment (and a .env file in
// the working directory, if any); command-line flags are applied on top by the
// caller. NewWire reads the credentials once and builds the Beeminder client
// and the holiday preview service from Config.
package app
