package cli

import (
	"github.com/semmy-space/browserselector/internal/output"
	"github.com/semmy-space/browserselector/internal/router"
)

// OpenCmd routes a URL to its browser and launches it
type OpenCmd struct {
	URL string `arg:"" optional:"" name:"url" help:"URL to open"`
}

// Run executes the open command
func (cmd *OpenCmd) Run(app *App) error {
	rules, err := app.Rules()
	if err != nil {
		return err
	}

	provider, err := app.ProfileProvider()
	if err != nil {
		return err
	}

	resolver := &router.Resolver{
		Rules:    rules,
		Apps:     app.Apps,
		Profiles: provider,
		Logger:   app.Logger,
	}

	res, err := resolver.Resolve(cmd.URL)
	if err != nil {
		return output.Wrap(output.ExitUsage, err)
	}

	app.Logger.Debug("running", "app", res.Command.Path, "args", res.Command.Args)

	if app.Globals.DryRun {
		return app.Formatter.Print(res.Command)
	}

	if err := app.Launcher.Launch(res.Command.Path, res.Command.Args); err != nil {
		return output.Wrap(output.ExitLaunchError, err)
	}

	return nil
}
