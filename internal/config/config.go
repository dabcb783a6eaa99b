// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	_ "embed"
	"net/netip"
	"sort"
)

const (
	// AppName is used for the discovered config directory (~/.config/fht2p).
	AppName = "fht2p"

	// ConfigFileName is the base name searched for during config discovery.
	ConfigFileName = "fht2p.toml"

	// DefaultMagicLimit is the default number of bytes inspected when
	// sniffing a file's content type. 10 MiB.
	DefaultMagicLimit uint64 = 10 << 20

	// DefaultCacheSecs is the default Cache-Control max-age in seconds.
	DefaultCacheSecs uint32 = 60

	// DefaultPort is the listening port used when routes come from the command line.
	DefaultPort uint16 = 8080

	// embeddedConfigName is reported in errors and warnings raised while
	// loading [DefaultTOML].
	embeddedConfigName = "embedded:" + ConfigFileName
)

// DefaultTOML is the configuration text compiled into the binary. It is
// printed by --config-print and loaded when no arguments are given and no
// config file can be discovered.
//
//go:embed fht2p.toml
var DefaultTOML string

// Configuration is the validated runtime configuration handed to the file
// server. It is built once at startup and never mutated afterwards, so it may
// be shared read-only between request handlers.
type Configuration struct {
	// KeepAlive allows persistent HTTP connections.
	KeepAlive bool `json:"keep_alive"`

	// FollowLinks makes the server traverse symbolic links.
	FollowLinks bool `json:"follow_links"`

	// CacheSecs is the Cache-Control max-age of served files. 0 disables
	// caching headers.
	CacheSecs uint32 `json:"cache_secs"`

	// MagicLimit is the byte threshold for content-type detection by magic
	// bytes. 0 disables sniffing.
	MagicLimit uint64 `json:"magic_limit"`

	// Addrs are the socket addresses to listen on, in order. Never empty.
	Addrs []netip.AddrPort `json:"addrs"`

	// Routes maps URL prefixes to filesystem locations. Never empty.
	Routes Routes `json:"routes"`
}

// Route binds a URL prefix to a filesystem location.
type Route struct {
	// URL always starts with "/" and ends with "/" when it denotes a directory.
	URL string `json:"url"`

	// Path is the filesystem location. It may not exist.
	Path string `json:"path"`

	// RedirectHTML redirects a directory request to index.html/index.htm
	// inside it, if present.
	RedirectHTML bool `json:"redirect_html"`
}

// Routes is a route table keyed by [Route.URL].
type Routes map[string]Route

// Sorted returns the routes ordered by URL.
func (rt Routes) Sorted() []Route {
	routes := make([]Route, 0, len(rt))
	for _, r := range rt {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].URL < routes[j].URL })

	return routes
}

// NewDefault returns the built-in configuration: one route serving the
// current directory at "/" and a single listener on 127.0.0.1:8080.
func NewDefault(magicLimit uint64) *Configuration {
	return &Configuration{
		KeepAlive:   true,
		FollowLinks: true,
		CacheSecs:   DefaultCacheSecs,
		MagicLimit:  magicLimit,
		Addrs: []netip.AddrPort{
			netip.AddrPortFrom(netip.AddrFrom4([4]byte{127, 0, 0, 1}), DefaultPort),
		},
		Routes: Routes{
			"/": {URL: "/", Path: "."},
		},
	}
}

// Default is NewDefault with [DefaultMagicLimit].
func Default() *Configuration {
	return NewDefault(DefaultMagicLimit)
}
