package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/semmy-space/browserselector/internal/config"
)

// ConfigPathCmd implements config path command
type ConfigPathCmd struct{}

// Run executes the path command
func (cmd *ConfigPathCmd) Run(app *App) error {
	path := config.ConfigPath(app.Globals.ConfigFile)

	// Print path to stdout
	fmt.Fprintln(app.Stdout, path)

	// Print existence hint to stderr
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(app.Stderr, "(file does not exist)\n")
	} else {
		fmt.Fprintf(app.Stderr, "(file exists)\n")
	}

	return nil
}

// ConfigCheckCmd validates the rules file
type ConfigCheckCmd struct{}

// Run loads the rules and warns about overlapping domains and profiles
// that cannot be found. Only an unloadable file is an error.
func (cmd *ConfigCheckCmd) Run(app *App) error {
	rules, err := app.Rules()
	if err != nil {
		return err
	}

	provider, err := app.ProfileProvider()
	if err != nil {
		return err
	}

	warnings := 0
	for _, o := range rules.Overlaps() {
		warnings++
		fmt.Fprintf(app.Stderr, "warning: %s is listed by %s; %q wins\n",
			o.Domain, strings.Join(o.Rules, ", "), o.Winner)
	}

	for _, rule := range rules {
		if rule.BrowserProfile == "" {
			continue
		}
		if !rule.Browser.Chromium() {
			warnings++
			fmt.Fprintf(app.Stderr, "warning: rule %q sets browser_profile but %s ignores it\n", rule.Name, rule.Browser)
			continue
		}
		if _, ok := provider.Profiles(rule.Browser)[rule.BrowserProfile]; !ok {
			warnings++
			root, _ := provider.Root(rule.Browser)
			fmt.Fprintf(app.Stderr, "warning: rule %q: profile %q not found under %s\n", rule.Name, rule.BrowserProfile, root)
		}
	}

	fmt.Fprintf(app.Stdout, "%d rules, %d warnings\n", len(rules), warnings)
	return nil
}
