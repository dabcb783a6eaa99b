package config

import "path/filepath"

// FindConfigPath returns the first existing config file among
//  1. <home>/.config/fht2p/fht2p.toml
//  2. <executable dir>/fht2p.toml
//  3. <working dir>/fht2p.toml
//
// A location whose directory cannot be determined is skipped. Files are only
// checked for existence, never read.
func (r *Resolver) FindConfigPath() (string, bool) {
	candidates := []struct {
		dir  func() (string, error)
		join func(dir string) string
	}{
		{r.probe.HomeDir, func(dir string) string { return filepath.Join(dir, ".config", AppName, ConfigFileName) }},
		{r.probe.ExecutableDir, func(dir string) string { return filepath.Join(dir, ConfigFileName) }},
		{r.probe.WorkingDir, func(dir string) string { return filepath.Join(dir, ConfigFileName) }},
	}

	for _, c := range candidates {
		dir, err := c.dir()
		if err != nil {
			r.log.Debug().Err(err).Msg("config location skipped")
			continue
		}

		path := c.join(dir)
		if r.probe.Exists(path) {
			return path, true
		}
	}

	return "", false
}
