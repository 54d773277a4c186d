package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/semmy-space/browserselector/internal/config"
	"github.com/semmy-space/browserselector/internal/launch"
	"github.com/semmy-space/browserselector/internal/logging"
	"github.com/semmy-space/browserselector/internal/output"
)

// CLI is the root command structure
type CLI struct {
	Globals

	Open     OpenCmd     `cmd:"" default:"withargs" help:"Open a URL in the browser its rule selects"`
	Rules    RulesCmd    `cmd:"" help:"List routing rules"`
	Profiles ProfilesCmd `cmd:"" help:"List discovered browser profiles"`
	Config   ConfigCmd   `cmd:"" help:"Configuration commands"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`

	// Collaborators, injected by main and by tests.
	Stdout   io.Writer       `kong:"-"`
	Stderr   io.Writer       `kong:"-"`
	Launcher launch.Launcher `kong:"-"`
	GOOS     string          `kong:"-"`
	Home     string          `kong:"-"`
	App      *App            `kong:"-"`
}

// App is bound into every command's Run.
type App struct {
	Globals   *Globals
	Formatter output.Formatter
	Logger    *slog.Logger
	Apps      config.Apps
	Launcher  launch.Launcher
	Stdout    io.Writer
	Stderr    io.Writer
	GOOS      string
	Home      string
}

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
	Check ConfigCheckCmd `cmd:"" help:"Validate the rules file"`
}

// NewParser builds the kong parser, filling in unset collaborators.
func NewParser(c *CLI, version string) (*kong.Kong, error) {
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Launcher == nil {
		c.Launcher = launch.Detached{}
	}
	if c.GOOS == "" {
		c.GOOS = runtime.GOOS
	}
	if c.Home == "" {
		c.Home = config.HomeDir()
	}

	return kong.New(c,
		kong.Name("browserselector"),
		kong.Description("Open URLs in the browser and profile chosen by domain rules"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(c.Stdout, c.Stderr),
		kong.Vars{
			"version": version,
		},
	)
}

// AfterApply runs once flags are applied.
// It sets up logging, resolves application paths, and binds the App.
func (c *CLI) AfterApply(ctx *kong.Context) error {
	logger, err := logging.New(c.Stderr, c.LogLevel, c.LogFormat, c.Verbose)
	if err != nil {
		return output.Wrap(output.ExitUsage, err)
	}
	slog.SetDefault(logger)

	apps := config.DefaultApps(c.GOOS)
	apps.Override(config.Chrome, c.ChromePath)
	apps.Override(config.Edge, c.EdgePath)
	apps.Override(config.Firefox, c.FirefoxPath)
	apps.Override(config.Default, c.OpenerPath)

	c.App = &App{
		Globals:   &c.Globals,
		Formatter: output.NewWithWriters(c.ResolvedOutput(c.Stdout), c.Stdout, c.Stderr),
		Logger:    logger,
		Apps:      apps,
		Launcher:  c.Launcher,
		Stdout:    c.Stdout,
		Stderr:    c.Stderr,
		GOOS:      c.GOOS,
		Home:      c.Home,
	}
	ctx.Bind(c.App)

	return nil
}

// Execute parses args, runs the selected command and returns the exit code.
func Execute(c *CLI, parser *kong.Kong, args []string) int {
	ctx, err := parser.Parse(args)
	if err != nil {
		var cliErr *output.CLIError
		if !errors.As(err, &cliErr) {
			cliErr = output.Wrap(output.ExitUsage, err)
		}
		return output.Report(output.NewWithWriters("plain", c.Stdout, c.Stderr), cliErr)
	}

	if err := ctx.Run(); err != nil {
		return output.Report(c.formatter(), err)
	}

	return output.ExitOK
}

func (c *CLI) formatter() output.Formatter {
	if c.App != nil {
		return c.App.Formatter
	}
	return output.NewWithWriters("plain", c.Stdout, c.Stderr)
}

// Rules loads the rules file. Any failure is a config error.
func (a *App) Rules() (config.RuleSet, error) {
	path := config.ConfigPath(a.Globals.ConfigFile)
	a.Logger.Debug("loading rules", "path", path)

	rules, err := config.Load(path)
	if err != nil {
		return nil, output.Wrap(output.ExitConfigError, err).
			WithHint(fmt.Sprintf("Create %s or pass --config", config.LocalConfigFile))
	}
	return rules, nil
}

// ProfileProvider resolves the per-browser profile roots from the home directory.
func (a *App) ProfileProvider() (*ProfileProvider, error) {
	roots, err := config.ProfileRoots(a.GOOS, a.Home)
	if err != nil {
		return nil, output.Wrap(output.ExitGeneral, err)
	}
	return NewProfileProvider(roots, a.Logger), nil
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context, app *App) error {
	version := ctx.Model.Vars()["version"]
	fmt.Fprintln(app.Stdout, "browserselector version "+version)
	return nil
}
