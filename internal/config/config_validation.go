// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// insert adds r under r.URL. If the key is already taken the table is left
// unchanged and [ErrDuplicateRoute] is returned.
func (rt Routes) insert(r Route) error {
	if _, ok := rt[r.URL]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, r.URL)
	}
	rt[r.URL] = r

	return nil
}

// validate checks that the final [Configuration] can be served: at least one
// listening address and at least one route. source names the file or input
// the configuration came from and is included in the error.
func (cfg *Configuration) validate(source string) error {
	if len(cfg.Addrs) == 0 {
		return fmt.Errorf("'%s': %w", source, ErrEmptyAddrs)
	}

	if len(cfg.Routes) == 0 {
		return fmt.Errorf("'%s': %w", source, ErrEmptyRoutes)
	}

	return nil
}
