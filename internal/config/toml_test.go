package config

import (
	"io/fs"
	"math"
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSetting = `
[setting]
keep-alive = false
magic-limit = 0
follow-links = false
cache-secs = 0
addrs = ["0.0.0.0:8000", "[::1]:9000"]
`

// TestLoadFile_Valid verifies conversion of a complete file, including the
// warning for a route whose path does not exist.
func TestLoadFile_Valid(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	path := writeTempFile(t, dir, "site.toml", validSetting+`
[[routes]]
url = "/"
path = "`+dir+`"
redirect-html = true

[[routes]]
url = "/gone/"
path = "`+missing+`"
`)

	r, logs, _ := newTestResolver(t, OSProbe{})
	cfg, err := r.LoadFile(path)
	require.NoError(t, err)

	assert.False(t, cfg.KeepAlive)
	assert.False(t, cfg.FollowLinks)
	assert.Zero(t, cfg.CacheSecs)
	assert.Zero(t, cfg.MagicLimit)
	assert.Equal(t, []netip.AddrPort{
		netip.MustParseAddrPort("0.0.0.0:8000"),
		netip.MustParseAddrPort("[::1]:9000"),
	}, cfg.Addrs)

	require.Len(t, cfg.Routes, 2)
	assert.Equal(t, Route{URL: "/", Path: dir, RedirectHTML: true}, cfg.Routes["/"])
	assert.Equal(t, Route{URL: "/gone/", Path: missing, RedirectHTML: false}, cfg.Routes["/gone/"])

	assert.Contains(t, logs.String(), "route path does not exist")
	assert.Contains(t, logs.String(), missing)
	assert.NotContains(t, logs.String(), `"url":"/"`)
}

// TestLoadFile_NotFound verifies that an unreadable file is an IO error
// naming the path.
func TestLoadFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	r, _, _ := newTestResolver(t, OSProbe{})

	cfg, err := r.LoadFile(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

// TestLoadFile_Directory verifies that a directory is not accepted as a file.
func TestLoadFile_Directory(t *testing.T) {
	dir := t.TempDir()
	r, _, _ := newTestResolver(t, OSProbe{})

	_, err := r.LoadFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadString_Errors(t *testing.T) {
	const route = `
[[routes]]
url = "/"
path = "."
`
	tests := []struct {
		name     string
		text     string
		wantErr  error
		contains string
	}{
		{
			name:     "malformed toml",
			text:     "[setting\nkeep-alive = ",
			wantErr:  ErrParse,
			contains: "site.toml",
		},
		{
			name: "duplicate url",
			text: validSetting + `
[[routes]]
url = "/docs/"
path = "a"

[[routes]]
url = "/docs/"
path = "b"
`,
			wantErr:  ErrDuplicateRoute,
			contains: `"/docs/"`,
		},
		{
			name: "empty addrs",
			text: `
[setting]
keep-alive = true
magic-limit = 1
follow-links = true
cache-secs = 1
addrs = []
` + route,
			wantErr:  ErrEmptyAddrs,
			contains: "site.toml",
		},
		{
			name:     "no routes",
			text:     validSetting,
			wantErr:  ErrEmptyRoutes,
			contains: "site.toml",
		},
		{
			name: "malformed address",
			text: `
[setting]
keep-alive = true
magic-limit = 1
follow-links = true
cache-secs = 1
addrs = ["not-an-address"]
` + route,
			wantErr:  ErrParse,
			contains: `"not-an-address"`,
		},
		{
			name: "address without port",
			text: `
[setting]
keep-alive = true
magic-limit = 1
follow-links = true
cache-secs = 1
addrs = ["127.0.0.1"]
` + route,
			wantErr:  ErrParse,
			contains: `"127.0.0.1"`,
		},
		{
			name: "missing setting key",
			text: `
[setting]
keep-alive = true
magic-limit = 1
follow-links = true
addrs = ["127.0.0.1:80"]
` + route,
			wantErr:  ErrParse,
			contains: "setting.cache-secs",
		},
		{
			name:     "missing setting table",
			text:     route,
			wantErr:  ErrParse,
			contains: "setting.keep-alive",
		},
		{
			name: "route without path",
			text: validSetting + `
[[routes]]
url = "/"
`,
			wantErr:  ErrParse,
			contains: "routes[0] missing key path",
		},
		{
			name: "route without url",
			text: validSetting + `
[[routes]]
path = "."
`,
			wantErr:  ErrParse,
			contains: "routes[0] missing key url",
		},
		{
			name: "cache-secs out of range",
			text: `
[setting]
keep-alive = true
magic-limit = 1
follow-links = true
cache-secs = 4294967296
addrs = ["127.0.0.1:80"]
` + route,
			wantErr:  ErrParse,
			contains: "site.toml",
		},
		{
			name: "negative magic-limit",
			text: `
[setting]
keep-alive = true
magic-limit = -1
follow-links = true
cache-secs = 1
addrs = ["127.0.0.1:80"]
` + route,
			wantErr:  ErrParse,
			contains: "magic-limit -1 is out of range",
		},
		{
			name: "wrong type",
			text: `
[setting]
keep-alive = "yes"
magic-limit = 1
follow-links = true
cache-secs = 1
addrs = ["127.0.0.1:80"]
` + route,
			wantErr:  ErrParse,
			contains: "site.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestResolver(t, OSProbe{})

			cfg, err := r.LoadString("site.toml", tt.text)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// TestLoadString_RedirectHTMLDefaultsToFalse verifies the optional route key.
func TestLoadString_RedirectHTMLDefaultsToFalse(t *testing.T) {
	r, _, _ := newTestResolver(t, OSProbe{})

	cfg, err := r.LoadString("site.toml", validSetting+`
[[routes]]
url = "/"
path = "."
`)
	require.NoError(t, err)
	assert.False(t, cfg.Routes["/"].RedirectHTML)
}

// TestLoadString_UnknownKeysWarn verifies that unknown keys are reported but
// not fatal.
func TestLoadString_UnknownKeysWarn(t *testing.T) {
	r, logs, _ := newTestResolver(t, OSProbe{})

	cfg, err := r.LoadString("site.toml", validSetting+`
colour = "blue"

[[routes]]
url = "/"
path = "."
index = "home.html"
`)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Contains(t, logs.String(), "unknown config keys ignored")
	assert.Contains(t, logs.String(), "setting.colour")
	assert.Contains(t, logs.String(), "routes.index")
}

// TestLoadString_MagicLimitUpperBound verifies that the largest TOML integer
// is kept as is.
func TestLoadString_MagicLimitUpperBound(t *testing.T) {
	r, _, _ := newTestResolver(t, OSProbe{})

	cfg, err := r.LoadString("site.toml", `
[setting]
keep-alive = true
magic-limit = 9223372036854775807
follow-links = true
cache-secs = 1
addrs = ["127.0.0.1:80"]

[[routes]]
url = "/"
path = "."
`)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), cfg.MagicLimit)
}
