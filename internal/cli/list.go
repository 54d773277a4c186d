package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/semmy-space/browserselector/internal/config"
	"github.com/semmy-space/browserselector/internal/output"
	"github.com/semmy-space/browserselector/internal/profiles"
)

// RulesCmd lists the loaded rules in file order
type RulesCmd struct{}

// Run executes the rules command
func (cmd *RulesCmd) Run(app *App) error {
	rules, err := app.Rules()
	if err != nil {
		return err
	}

	cols := []output.Column{
		{Name: "Name", Key: "Name"},
		{Name: "Browser", Key: "Browser"},
		{Name: "Profile", Key: "BrowserProfile"},
		{Name: "Domains", Key: "Domains", Width: 60},
	}

	return app.Formatter.PrintList(rules, cols)
}

// ProfilesCmd lists the profiles discovered for a Chromium browser
type ProfilesCmd struct {
	Browser string `help:"Browser whose profiles to scan" default:"edge" enum:"chrome,edge"`
	Root    string `help:"Scan this directory instead of the browser's profile root" type:"path"`
}

// ProfileItem is one discovered profile.
type ProfileItem struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
}

// Run executes the profiles command
func (cmd *ProfilesCmd) Run(app *App) error {
	browser := config.Browser(cmd.Browser)

	var (
		res  profiles.Result
		root = cmd.Root
	)
	if root != "" {
		if _, err := os.Stat(root); err != nil {
			return rootNotFound(root)
		}
		res = profiles.NewScanner(app.Logger).Scan(root)
	} else {
		provider, err := app.ProfileProvider()
		if err != nil {
			return err
		}
		root, _ = provider.Root(browser)
		if _, err := os.Stat(root); err != nil {
			return rootNotFound(root)
		}
		res = provider.Scan(browser)
	}

	items := profileItems(res.Dirs)
	if err := app.Formatter.PrintList(items, []output.Column{
		{Name: "Name", Key: "Name"},
		{Name: "Directory", Key: "Directory"},
	}); err != nil {
		return err
	}

	app.Formatter.PrintHint(fmt.Sprintf("%d discovered, %d skipped in %s", res.Discovered, res.Skipped, root))
	return nil
}

func rootNotFound(root string) error {
	return output.NewCLIError(output.ExitNotFound, fmt.Sprintf("profile root not found: %s", root)).
		WithHint("Pass --root to scan another directory")
}

// profileItems returns dirs sorted by display name.
func profileItems(dirs profiles.Dirs) []ProfileItem {
	items := make([]ProfileItem, 0, len(dirs))
	for name, dir := range dirs {
		items = append(items, ProfileItem{Name: name, Directory: dir})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items
}
