package config

import (
	"fmt"
	"net/netip"
)

// Resolve produces the final [Configuration] from the process arguments
// (args[0] is the program name). Sources are tried in this order and the
// first applicable one wins:
//  1. -C/--config-print: the embedded default is written out and
//     [ErrExitSuccess] is returned
//  2. -c/--config: the given file
//  3. no arguments at all: a discovered fht2p.toml, else the embedded default
//  4. otherwise: defaults overridden by the command line, routes built from
//     the positional paths
//
// Any returned error other than [ErrExitSuccess] is fatal.
func (r *Resolver) Resolve(args []string) (*Configuration, error) {
	opts, err := ParseFlags(args, r.stdout, r.version)
	if err != nil {
		return nil, err
	}

	if opts.PrintConfig {
		if _, err := fmt.Fprint(r.stdout, DefaultTOML); err != nil {
			return nil, fmt.Errorf("%w: printing default config: %w", ErrIO, err)
		}
		return nil, ErrExitSuccess
	}

	return newConfigBuilder(r, opts).
		withExplicitFile().
		withDiscoveredFile().
		withEmbeddedDefault().
		withArgs().
		build()
}

// configBuilder applies the config sources in precedence order. Once a
// source has produced a configuration or an error the remaining steps are
// no-ops.
type configBuilder struct {
	r      *Resolver
	opts   Options
	config *Configuration
	source string
	err    error
}

func newConfigBuilder(r *Resolver, opts Options) *configBuilder {
	return &configBuilder{r: r, opts: opts}
}

func (b *configBuilder) done() bool {
	return b.config != nil || b.err != nil
}

func (b *configBuilder) build() (*Configuration, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.config == nil {
		return nil, fmt.Errorf("%w: no configuration source applied", ErrValidation)
	}

	b.r.log.Debug().Str("source", b.source).Msg("configuration resolved")

	return b.config, nil
}

func (b *configBuilder) withExplicitFile() *configBuilder {
	if b.done() || !b.opts.HasConfigPath {
		return b
	}

	b.config, b.err = b.r.LoadFile(b.opts.ConfigPath)
	b.source = b.opts.ConfigPath
	return b
}

func (b *configBuilder) withDiscoveredFile() *configBuilder {
	if b.done() || !b.opts.NoArgs {
		return b
	}

	path, ok := b.r.FindConfigPath()
	if !ok {
		return b
	}

	b.config, b.err = b.r.LoadFile(path)
	b.source = path
	return b
}

func (b *configBuilder) withEmbeddedDefault() *configBuilder {
	if b.done() || !b.opts.NoArgs {
		return b
	}

	b.config, b.err = b.r.LoadString(embeddedConfigName, DefaultTOML)
	b.source = embeddedConfigName
	return b
}

func (b *configBuilder) withArgs() *configBuilder {
	if b.done() {
		return b
	}

	routes, err := b.r.RoutesFromPaths(b.opts.Paths, b.opts.RedirectHTML)
	if err != nil {
		b.err = err
		return b
	}

	config := Default()
	config.KeepAlive = b.opts.KeepAlive
	config.FollowLinks = b.opts.FollowLinks
	config.MagicLimit = b.opts.MagicLimit
	config.CacheSecs = b.opts.CacheSecs
	config.Addrs = []netip.AddrPort{netip.AddrPortFrom(b.opts.IP, b.opts.Port)}
	config.Routes = routes

	if err := config.validate("command line"); err != nil {
		b.err = err
		return b
	}

	b.config = config
	b.source = "command line"
	return b
}
