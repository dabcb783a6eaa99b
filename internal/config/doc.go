// Package config resolves the runtime configuration of the fht2p static file
// server.
//
// The configuration comes from exactly one of the following sources, checked
// in this order:
//  1. -C/--config-print: the embedded default is printed and nothing is loaded
//  2. -c/--config: an explicit TOML file
//  3. no arguments at all: the first fht2p.toml found under ~/.config/fht2p,
//     next to the executable or in the working directory, else the embedded
//     default
//  4. command-line settings with routes built from the positional paths
//
// The main entry point is [Resolver.Resolve]. The result is a validated
// [Configuration] that is never modified afterwards.
package config
