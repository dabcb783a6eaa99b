package config

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/BurntSushi/toml"
)

// tomlConfig is the on-disk schema of fht2p.toml. It is converted into a
// [Configuration] by [Resolver.LoadString].
type tomlConfig struct {
	Setting tomlSetting `toml:"setting"`
	Routes  []tomlRoute `toml:"routes"`
}

type tomlSetting struct {
	KeepAlive   bool     `toml:"keep-alive"`
	MagicLimit  int64    `toml:"magic-limit"`
	FollowLinks bool     `toml:"follow-links"`
	CacheSecs   uint32   `toml:"cache-secs"`
	Addrs       []string `toml:"addrs"`
}

type tomlRoute struct {
	URL          *string `toml:"url"`
	Path         *string `toml:"path"`
	RedirectHTML bool    `toml:"redirect-html"`
}

// requiredSettingKeys must all be present under [setting].
var requiredSettingKeys = []string{"keep-alive", "magic-limit", "follow-links", "cache-secs", "addrs"}

// LoadFile reads and loads the TOML config file at path.
func (r *Resolver) LoadFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config file('%s') read fails: %w", ErrIO, path, err)
	}

	return r.LoadString(path, string(data))
}

// LoadString parses text as a TOML config and validates the result. name is
// used in errors and warnings in place of a file path.
func (r *Resolver) LoadString(name, text string) (*Configuration, error) {
	var staged tomlConfig
	md, err := toml.Decode(text, &staged)
	if err != nil {
		return nil, fmt.Errorf("%w: config file('%s') parse fails: %w", ErrParse, name, err)
	}

	for _, key := range requiredSettingKeys {
		if !md.IsDefined("setting", key) {
			return nil, fmt.Errorf("%w: config file('%s') parse fails: missing key setting.%s", ErrParse, name, key)
		}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		r.log.Warn().Str("file", name).Strs("keys", keys).Msg("unknown config keys ignored")
	}

	return r.fromTOML(name, &staged)
}

func (r *Resolver) fromTOML(name string, staged *tomlConfig) (*Configuration, error) {
	if staged.Setting.MagicLimit < 0 {
		return nil, fmt.Errorf("%w: config file('%s') parse fails: magic-limit %d is out of range", ErrParse, name, staged.Setting.MagicLimit)
	}

	cfg := &Configuration{
		KeepAlive:   staged.Setting.KeepAlive,
		FollowLinks: staged.Setting.FollowLinks,
		CacheSecs:   staged.Setting.CacheSecs,
		MagicLimit:  uint64(staged.Setting.MagicLimit),
		Addrs:       make([]netip.AddrPort, 0, len(staged.Setting.Addrs)),
		Routes:      make(Routes, len(staged.Routes)),
	}

	for _, s := range staged.Setting.Addrs {
		addr, err := netip.ParseAddrPort(s)
		if err != nil {
			return nil, fmt.Errorf("%w: config file('%s')'s %q is not a socket address: %w", ErrParse, name, s, err)
		}
		cfg.Addrs = append(cfg.Addrs, addr)
	}

	for i, route := range staged.Routes {
		if route.URL == nil {
			return nil, fmt.Errorf("%w: config file('%s') parse fails: routes[%d] missing key url", ErrParse, name, i)
		}
		if route.Path == nil {
			return nil, fmt.Errorf("%w: config file('%s') parse fails: routes[%d] missing key path", ErrParse, name, i)
		}

		if !r.probe.Exists(*route.Path) {
			r.log.Warn().
				Str("file", name).
				Str("url", *route.URL).
				Str("path", *route.Path).
				Msg("route path does not exist")
		}

		err := cfg.Routes.insert(Route{
			URL:          *route.URL,
			Path:         *route.Path,
			RedirectHTML: route.RedirectHTML,
		})
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", name, err)
		}
	}

	if err := cfg.validate(name); err != nil {
		return nil, err
	}

	return cfg, nil
}
