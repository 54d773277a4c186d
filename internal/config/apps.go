package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/semmy-space/browserselector/pkg/browser"
)

// Browser identifies the application a rule routes to.
type Browser string

const (
	Chrome  Browser = "chrome"
	Edge    Browser = "edge"
	Firefox Browser = "firefox"
	Default Browser = "default"
)

// ErrNoHome is returned when the user's home directory cannot be determined.
var ErrNoHome = errors.New("cannot resolve home directory")

// ParseBrowser normalises a browser name. The empty string means Default.
func ParseBrowser(name string) (Browser, error) {
	b := Browser(strings.ToLower(strings.TrimSpace(name)))
	if b == "" {
		return Default, nil
	}
	if _, ok := darwinApps[b]; !ok {
		return "", fmt.Errorf("unknown browser: %s (valid: %s)", name, strings.Join(ValidBrowsers(), ", "))
	}
	return b, nil
}

// Chromium reports whether the browser takes --profile-directory.
func (b Browser) Chromium() bool {
	return b == Chrome || b == Edge
}

// Apps maps each browser to the executable that is launched for it.
type Apps map[Browser]string

// darwinApps are the fixed application bundle paths on macOS.
var darwinApps = Apps{
	Chrome:  "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	Edge:    "/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
	Firefox: "/Applications/Firefox.app/Contents/MacOS/firefox",
	Default: browser.OpenerPath("darwin"),
}

var linuxApps = Apps{
	Chrome:  "google-chrome",
	Edge:    "microsoft-edge",
	Firefox: "firefox",
	Default: browser.OpenerPath("linux"),
}

var windowsApps = Apps{
	Chrome:  `C:\Program Files\Google\Chrome\Application\chrome.exe`,
	Edge:    `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
	Firefox: `C:\Program Files\Mozilla Firefox\firefox.exe`,
	Default: browser.OpenerPath("windows"),
}

// DefaultApps returns a fresh copy of the executable table for goos.
// Unknown platforms get the Linux names, which at least resolve through PATH.
func DefaultApps(goos string) Apps {
	var src Apps
	switch goos {
	case "darwin":
		src = darwinApps
	case "windows":
		src = windowsApps
	default:
		src = linuxApps
	}

	apps := make(Apps, len(src))
	for b, path := range src {
		apps[b] = path
	}
	return apps
}

// Override replaces the executable for b when path is non-empty.
func (a Apps) Override(b Browser, path string) {
	if path != "" {
		a[b] = path
	}
}

// Get returns the executable for b.
func (a Apps) Get(b Browser) (string, error) {
	path, ok := a[b]
	if !ok || path == "" {
		return "", fmt.Errorf("no executable configured for browser: %s", b)
	}
	return path, nil
}

// ValidBrowsers returns a sorted list of accepted browser names
func ValidBrowsers() []string {
	names := make([]string, 0, len(darwinApps))
	for b := range darwinApps {
		names = append(names, string(b))
	}
	sort.Strings(names)
	return names
}

// ProfileRoots returns the profile-storage directory for each Chromium browser.
func ProfileRoots(goos, home string) (map[Browser]string, error) {
	if home == "" {
		return nil, ErrNoHome
	}

	switch goos {
	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		return map[Browser]string{
			Chrome: filepath.Join(support, "Google", "Chrome"),
			Edge:   filepath.Join(support, "Microsoft Edge"),
		}, nil
	case "windows":
		local := filepath.Join(home, "AppData", "Local")
		return map[Browser]string{
			Chrome: filepath.Join(local, "Google", "Chrome", "User Data"),
			Edge:   filepath.Join(local, "Microsoft", "Edge", "User Data"),
		}, nil
	default:
		conf := filepath.Join(home, ".config")
		return map[Browser]string{
			Chrome: filepath.Join(conf, "google-chrome"),
			Edge:   filepath.Join(conf, "microsoft-edge"),
		}, nil
	}
}
