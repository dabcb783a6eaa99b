package config

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_Insert verifies check-and-insert semantics.
func TestRoutes_Insert(t *testing.T) {
	rt := Routes{}

	require.NoError(t, rt.insert(Route{URL: "/docs/", Path: "first"}))
	require.NoError(t, rt.insert(Route{URL: "/img/", Path: "img"}))

	err := rt.insert(Route{URL: "/docs/", Path: "second"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRoute)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), `"/docs/"`)

	// the first binding survives the collision
	assert.Equal(t, "first", rt["/docs/"].Path)
	assert.Len(t, rt, 2)
}

func TestConfiguration_Validate(t *testing.T) {
	addrs := []netip.AddrPort{netip.MustParseAddrPort("127.0.0.1:8080")}
	routes := Routes{"/": {URL: "/", Path: "."}}

	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Configuration{Addrs: addrs, Routes: routes},
		},
		{
			name:    "no addrs",
			cfg:     Configuration{Routes: routes},
			wantErr: ErrEmptyAddrs,
		},
		{
			name:    "no routes",
			cfg:     Configuration{Addrs: addrs, Routes: Routes{}},
			wantErr: ErrEmptyRoutes,
		},
		{
			name:    "nothing at all",
			cfg:     Configuration{},
			wantErr: ErrEmptyAddrs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate("site.toml")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), "site.toml")
		})
	}
}
