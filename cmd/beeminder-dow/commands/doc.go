// Package commands defines the beeminder-dow CLI.
//
// Usage
//
//	beeminder-dow [flags] <goal> <dow_spec>
//	beeminder-dow seal-key -p <passphrase>
//
// Flags must come before <goal>; later arguments are positional, so a dow_spec
// may start with a holiday ("-twtf--").
//
// The dow_spec is seven characters, Monday first; '-' marks a holiday and any
// other character a day the goal counts on.
//
// # Implementation
//
// The root command validates the dow_spec before anything touches the disk or
// the network, loads configuration (defaults, environment, flags), then builds
// the dependency graph from internal/app and prints a schedule preview. Errors
// are returned up to Execute, which is the only place that maps them to
// messages and exit codes.
package commands
