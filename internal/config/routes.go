package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RoutesFromPaths builds a route table from the positional command-line
// paths. paths[0] is always served at "/". Every other path is served at "/"
// followed by its base name, with a trailing "/" when it is a directory.
// Paths that do not exist or that look like flags are logged and kept.
func (r *Resolver) RoutesFromPaths(paths []string, redirectHTML bool) (Routes, error) {
	routes := make(Routes, len(paths))

	for idx, path := range paths {
		if strings.HasPrefix(path, "-") {
			r.log.Warn().Str("path", path).Msg("path looks like a flag; flags after the first path are treated as paths")
		}

		if !r.probe.Exists(path) {
			r.log.Warn().Str("path", path).Msg("path does not exist")
		}

		if idx == 0 {
			routes["/"] = Route{URL: "/", Path: path, RedirectHTML: redirectHTML}
			continue
		}

		name, ok := baseName(path)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoBaseName, path)
		}

		url := "/" + name
		if r.probe.IsDir(path) {
			url += "/"
		}

		if err := routes.insert(Route{URL: url, Path: path, RedirectHTML: redirectHTML}); err != nil {
			return nil, err
		}
	}

	return routes, nil
}

// baseName returns the last named element of path. Trailing separators and
// "." elements are ignored. Root paths, "." and paths ending in ".." have no
// name.
func baseName(path string) (string, bool) {
	path = filepath.ToSlash(strings.TrimPrefix(path, filepath.VolumeName(path)))
	elems := strings.Split(path, "/")

	for i := len(elems) - 1; i >= 0; i-- {
		switch elems[i] {
		case "", ".":
			continue
		case "..":
			return "", false
		default:
			return elems[i], true
		}
	}

	return "", false
}
