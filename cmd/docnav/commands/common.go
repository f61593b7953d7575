package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/icons"
	"git.home.luguber.info/inful/docnav/internal/observability"
	"git.home.luguber.info/inful/docnav/internal/version"
)

// Global carries state shared by all subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // command output
	Err    io.Writer // logs
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Resolve ResolveCmd `cmd:"" help:"Resolve the sidebar and print every version with absolute paths"`
	Select  SelectCmd  `cmd:"" help:"Print the sidebar version serving a page path"`
	Check   CheckCmd   `cmd:"" help:"Build the site and report broken links"`
	Serve   ServeCmd   `cmd:"" help:"Serve the navigation API and reload on changes"`
	Icons   IconsCmd   `cmd:"" help:"List icons or print one as SVG"`
	Theme   ThemeCmd   `cmd:"" help:"List highlight themes or print one as JSON"`
}

// NewParser builds the kong parser for cli, binding global into every
// command's Run.
func NewParser(cli *CLI, global *Global, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("docnav"),
		kong.Description("Resolve, check and serve the navigation of a documentation site."),
		kong.UsageOnError(),
		kong.Vars{
			"version":            version.String(),
			"default_icon_class": icons.DefaultClass,
		},
		kong.Bind(global),
	}
	return kong.New(cli, append(opts, options...)...)
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	if g.Out == nil {
		g.Out = os.Stdout
	}
	if g.Err == nil {
		g.Err = os.Stderr
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(g.Err, level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig reads the configuration file and, unless -v was given, switches
// logging to the configured level and format.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if !c.Verbose {
		g.Logger = newLogger(g.Err, cfg.Logging.Level.SlogLevel(), cfg.Logging.Format)
		slog.SetDefault(g.Logger)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == config.LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(observability.NewContextHandler(h))
}
