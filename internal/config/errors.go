package config

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by [Resolver.Resolve] other than
// [ErrExitSuccess] wraps exactly one of them.
var (
	// ErrIO indicates a config file could not be opened or read.
	ErrIO = errors.New("io error")
	// ErrParse indicates malformed TOML, a missing required key, a malformed
	// socket address or an invalid command-line value.
	ErrParse = errors.New("parse error")
	// ErrValidation indicates a structurally valid configuration that breaks
	// a route table or address invariant.
	ErrValidation = errors.New("validation error")
)

// Validation failures, each wrapping [ErrValidation].
var (
	ErrEmptyAddrs     = fmt.Errorf("%w: addrs is empty", ErrValidation)
	ErrEmptyRoutes    = fmt.Errorf("%w: routes is empty", ErrValidation)
	ErrDuplicateRoute = fmt.Errorf("%w: route already defined", ErrValidation)
	ErrNoBaseName     = fmt.Errorf("%w: path does not have a name", ErrValidation)
)

// ErrExitSuccess is returned when the requested output (help, version or the
// default config) has already been written and the process should exit 0.
var ErrExitSuccess = errors.New("exit requested")

// ErrInvalidLogSettings indicates an unsupported FHT2P_LOG_LEVEL or
// FHT2P_LOG_FORMAT value.
var ErrInvalidLogSettings = errors.New("invalid log settings")
