package config

import (
	"fmt"
	"io"
	"math"
	"net/netip"
	"strings"

	"github.com/urfave/cli/v2"
)

func init() {
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Show the help message",
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Show the version message",
	}
}

// Options holds the values staged from the command line. Boolean switches
// are already applied to their defaults: -k turns keep-alive off, -f turns
// link following off and -r turns index redirection on.
type Options struct {
	PrintConfig   bool
	ConfigPath    string
	HasConfigPath bool
	RedirectHTML  bool
	KeepAlive     bool
	FollowLinks   bool
	MagicLimit    uint64
	CacheSecs     uint32
	IP            netip.Addr
	Port          uint16
	// Paths are the positional paths to share, ["./"] when none were given.
	Paths []string
	// NoArgs is set when the process was started without any argument.
	NoArgs bool
}

// ParseFlags parses args (including the program name at args[0]).
//
// Flags:
//
//	-h/--help             show the help message
//	-V/--version          show the version message
//	-r/--redirect-html    redirect dir to index.html/htm, if it exists
//	-m/--magic-limit      content-type detection limit in bytes (0 disables)
//	-k/--keep-alive       close HTTP keep alive
//	-c/--config           custom config file
//	-C/--config-print     print the default config file
//	-s/--cache-secs       cache secs (0 disables)
//	-f/--follow-links     do not follow links
//	-i/--ip               listening ip
//	-p/--port             listening port
//
// Help and version output is written to stdout and reported as
// [ErrExitSuccess]. Invalid input is reported as [ErrParse].
func ParseFlags(args []string, stdout io.Writer, version string) (Options, error) {
	if len(args) > 1 && helpRequested(args[1:]) {
		if err := PrintUsage(stdout, version); err != nil {
			return Options{}, fmt.Errorf("%w: printing help: %w", ErrIO, err)
		}
		return Options{}, ErrExitSuccess
	}

	var (
		opts   Options
		parsed bool
		ip     = &ipValue{addr: netip.IPv4Unspecified()}
	)
	def := Default()

	app := newApp(stdout, version, ip, func(c *cli.Context) error {
		port := c.Uint("port")
		if port > math.MaxUint16 {
			return fmt.Errorf("port %d is out of range", port)
		}

		cacheSecs := c.Uint64("cache-secs")
		if cacheSecs > math.MaxUint32 {
			return fmt.Errorf("cache-secs %d is out of range", cacheSecs)
		}

		paths := c.Args().Slice()
		if len(paths) == 0 {
			paths = []string{"./"}
		}

		opts = Options{
			PrintConfig:   c.Bool("config-print"),
			ConfigPath:    c.String("config"),
			HasConfigPath: c.IsSet("config"),
			RedirectHTML:  c.Bool("redirect-html"),
			KeepAlive:     def.KeepAlive != c.Bool("keep-alive"),
			FollowLinks:   def.FollowLinks != c.Bool("follow-links"),
			MagicLimit:    c.Uint64("magic-limit"),
			CacheSecs:     uint32(cacheSecs),
			IP:            ip.addr,
			Port:          uint16(port),
			Paths:         paths,
			NoArgs:        len(args) <= 1,
		}
		parsed = true

		return nil
	})

	if err := app.Run(args); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if !parsed {
		return Options{}, ErrExitSuccess
	}

	return opts, nil
}

// valueFlags take their value from the next argument.
var valueFlags = map[string]bool{
	"-m": true, "--magic-limit": true,
	"-c": true, "--config": true,
	"-s": true, "--cache-secs": true,
	"-i": true, "--ip": true,
	"-p": true, "--port": true,
}

// helpRequested reports whether -h/--help appears among the flags, that is
// before the first positional path or "--". Anything following it would
// otherwise be read as a help topic.
func helpRequested(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-"):
			return false
		case arg == "-h" || arg == "--help":
			return true
		case valueFlags[arg]:
			i++
		case !strings.HasPrefix(arg, "--") && !strings.Contains(arg, "="):
			// combined short switches, e.g. -kh or -kc <file>
			shorts := arg[1:]
			for j, c := range shorts {
				if c == 'h' {
					return true
				}
				if valueFlags["-"+string(c)] {
					if j == len(shorts)-1 {
						i++
					}
					break
				}
			}
		}
	}

	return false
}

// PrintUsage writes the help message to w.
func PrintUsage(w io.Writer, version string) error {
	app := newApp(w, version, &ipValue{addr: netip.IPv4Unspecified()}, func(*cli.Context) error { return nil })
	return app.Run([]string{AppName, "--help"})
}

func newApp(w io.Writer, version string, ip *ipValue, action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:                   AppName,
		Usage:                  "A HTTP Server for Static File",
		Version:                version,
		ArgsUsage:              "[<PATH>...]",
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Writer:                 w,
		ErrWriter:              w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "redirect-html",
				Aliases: []string{"r"},
				Usage:   "Redirect dir to `index.html/htm`, if it exists",
			},
			&cli.Uint64Flag{
				Name:    "magic-limit",
				Aliases: []string{"m"},
				Usage:   "The `byte` limit for detect file ContentType (use 0 to close)",
				Value:   DefaultMagicLimit,
			},
			&cli.BoolFlag{
				Name:    "keep-alive",
				Aliases: []string{"k"},
				Usage:   "Close HTTP keep alive",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Sets a custom `config` file",
			},
			&cli.BoolFlag{
				Name:    "config-print",
				Aliases: []string{"C"},
				Usage:   "Print the default config file",
			},
			&cli.Uint64Flag{
				Name:    "cache-secs",
				Aliases: []string{"s"},
				Usage:   "Sets cache `secs` (use 0 to close)",
				Value:   uint64(DefaultCacheSecs),
			},
			&cli.BoolFlag{
				Name:    "follow-links",
				Aliases: []string{"f"},
				Usage:   "Whether follow links (default follow)",
			},
			&cli.GenericFlag{
				Name:    "ip",
				Aliases: []string{"i"},
				Usage:   "Sets listening `ip`",
				Value:   ip,
			},
			&cli.UintFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Sets listening `port`",
				Value:   uint(DefaultPort),
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return err
		},
		Action: action,
	}
}

// ipValue is a cli.Generic holding a listening IP address.
type ipValue struct {
	addr netip.Addr
}

// Set parses s as an IPv4 or IPv6 address.
func (v *ipValue) Set(s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return fmt.Errorf("incorrect IP-address provided: %w", err)
	}
	v.addr = addr

	return nil
}

func (v *ipValue) String() string {
	if v == nil || !v.addr.IsValid() {
		return ""
	}

	return v.addr.String()
}
