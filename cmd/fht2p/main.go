// Command fht2p resolves the configuration of the fht2p static file server
// from its command line, a TOML config file or the built-in default.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-fht2p/internal/config"
	"github.com/MKhiriev/go-fht2p/internal/logger"
	"github.com/MKhiriev/go-fht2p/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	logSettings, logErr := config.GetLogSettings()
	log := logger.NewLogger("fht2p", logSettings.Level, logSettings.Format)
	if logErr != nil {
		log.Warn().Err(logErr).Msg("using default log settings")
	}
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	resolver := config.NewResolver(log, config.WithVersion(buildInfo.String()))
	cfg, err := resolver.Resolve(os.Args)
	if errors.Is(err, config.ErrExitSuccess) {
		os.Exit(0)
	}
	if err != nil {
		fatal(buildInfo.String(), err)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	for _, addr := range cfg.Addrs {
		log.Info().Stringer("addr", addr).Msg("listen address")
	}
	for _, route := range cfg.Routes.Sorted() {
		log.Info().
			Str("url", route.URL).
			Str("path", route.Path).
			Bool("redirect_html", route.RedirectHTML).
			Msg("route")
	}
}

// fatal prints the usage text followed by err to stderr and exits 1.
func fatal(version string, err error) {
	_ = config.PrintUsage(os.Stderr, version)
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(os.Stderr, "error: ")
	_, _ = color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
