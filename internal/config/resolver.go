package config

import (
	"io"
	"os"

	"github.com/MKhiriev/go-fht2p/internal/logger"
)

// Resolver turns process arguments, config files and the embedded default
// into a single validated [Configuration].
type Resolver struct {
	probe   Probe
	log     *logger.Logger
	stdout  io.Writer
	version string
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithProbe replaces the process environment used for config discovery and
// path checks.
func WithProbe(p Probe) Option {
	return func(r *Resolver) {
		r.probe = p
	}
}

// WithOutput sets where help, version and --config-print output is written.
func WithOutput(w io.Writer) Option {
	return func(r *Resolver) {
		r.stdout = w
	}
}

// WithVersion sets the version shown by -V/--version.
func WithVersion(version string) Option {
	return func(r *Resolver) {
		r.version = version
	}
}

// NewResolver creates a Resolver backed by [OSProbe] and os.Stdout unless
// overridden by opts.
func NewResolver(log *logger.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		probe:   OSProbe{},
		log:     log,
		stdout:  os.Stdout,
		version: "dev",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}
