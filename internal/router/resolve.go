package router

import (
	"log/slog"

	"github.com/semmy-space/browserselector/internal/config"
	"github.com/semmy-space/browserselector/internal/profiles"
)

// ProfileSource returns the discovered profiles for a browser.
type ProfileSource interface {
	Profiles(b config.Browser) profiles.Dirs
}

// Resolver runs the whole routing decision for one URL.
type Resolver struct {
	Rules    config.RuleSet
	Apps     config.Apps
	Profiles ProfileSource
	Logger   *slog.Logger
}

// Resolution is what Resolve decided. Rule is nil when the default opener is used.
type Resolution struct {
	URL     ParsedURL
	Rule    *config.Rule
	Command Command
}

// Resolve parses raw, matches it and builds the command. Profiles are only
// scanned when the matched rule asks for one.
func (r *Resolver) Resolve(raw string) (Resolution, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	target, err := ParseURL(raw)
	if err != nil {
		return Resolution{}, err
	}
	logger.Debug("parsed url", "host", target.Host)

	rule := Match(r.Rules, target.Host)
	if rule != nil {
		logger.Debug("matched rule", "rule", rule.Name, "browser", rule.Browser)
	} else {
		logger.Debug("no rule matched, using default opener")
	}

	var dirs profiles.Dirs
	if rule != nil && rule.Browser.Chromium() && rule.BrowserProfile != "" && r.Profiles != nil {
		dirs = r.Profiles.Profiles(rule.Browser)
		if _, ok := dirs[rule.BrowserProfile]; !ok {
			logger.Warn("browser profile not found, opening without it",
				"rule", rule.Name, "profile", rule.BrowserProfile)
		}
	}

	cmd, err := Build(rule, dirs, r.Apps, target.String)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{URL: target, Rule: rule, Command: cmd}, nil
}
