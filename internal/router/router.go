// Package router turns a URL into the command that opens it: it finds the
// rule whose domains contain the URL's host and builds the browser
// invocation for that rule.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"github.com/semmy-space/browserselector/internal/config"
	"github.com/semmy-space/browserselector/internal/profiles"
)

var (
	ErrNoURL      = errors.New("no url given")
	ErrInvalidURL = errors.New("invalid url")
)

// ParsedURL is the routed URL. Host has no port. Domain names are lower-cased
// ASCII (punycode for internationalized names) and IPv6 literals keep their
// brackets.
type ParsedURL struct {
	Host   string
	String string
}

// hostProfile maps names the way browsers do before lookup. Underscores and
// leading or trailing hyphens are allowed in labels.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// ParseURL requires an absolute URL with a host.
func ParseURL(raw string) (ParsedURL, error) {
	if strings.TrimSpace(raw) == "" {
		return ParsedURL{}, ErrNoURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	hostname := u.Hostname()
	if hostname == "" {
		return ParsedURL{}, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}

	if strings.Contains(hostname, ":") {
		return ParsedURL{Host: "[" + strings.ToLower(hostname) + "]", String: u.String()}, nil
	}

	host, err := hostProfile.ToASCII(hostname)
	if err != nil || host == "" {
		return ParsedURL{}, fmt.Errorf("%w: bad host %q", ErrInvalidURL, hostname)
	}
	if port := u.Port(); port != "" {
		u.Host = host + ":" + port
	} else {
		u.Host = host
	}

	return ParsedURL{Host: host, String: u.String()}, nil
}

// Match returns the last rule listing host, or nil. Later rules override
// earlier ones, so the loop never stops early.
func Match(rules config.RuleSet, host string) *config.Rule {
	var active *config.Rule
	for i := range rules {
		if rules[i].Matches(host) {
			active = &rules[i]
		}
	}
	return active
}

// Command is an executable with its arguments.
type Command struct {
	Path string   `json:"path"`
	Args []string `json:"args"`
}

func (c Command) String() string {
	return fmt.Sprintf("%s %q", c.Path, c.Args)
}

// Build assembles the command for rule, or for the default opener when
// rule is nil. A browser_profile that is missing from dirs is dropped.
func Build(rule *config.Rule, dirs profiles.Dirs, apps config.Apps, target string) (Command, error) {
	browser := config.Default
	if rule != nil {
		browser = rule.Browser
	}

	path, err := apps.Get(browser)
	if err != nil {
		return Command{}, err
	}

	var args []string
	switch browser {
	case config.Chrome, config.Edge:
		if dir, ok := ProfileDir(rule, dirs); ok {
			args = append(args, "--profile-directory="+dir)
		}
	case config.Firefox:
		args = append(args, "--new-tab")
	}
	args = append(args, target)

	return Command{Path: path, Args: args}, nil
}

// ProfileDir resolves the rule's browser_profile against dirs.
func ProfileDir(rule *config.Rule, dirs profiles.Dirs) (string, bool) {
	if rule == nil || rule.BrowserProfile == "" {
		return "", false
	}
	dir, ok := dirs[rule.BrowserProfile]
	return dir, ok
}
