package cli

import (
	"log/slog"
	"sync"

	"github.com/semmy-space/browserselector/internal/config"
	"github.com/semmy-space/browserselector/internal/profiles"
)

// ProfileProvider lazily scans each browser's profile root, at most once per run.
type ProfileProvider struct {
	roots   map[config.Browser]string
	scanner *profiles.Scanner

	mu    sync.Mutex
	cache map[config.Browser]profiles.Result
}

// NewProfileProvider creates a ProfileProvider over the given roots.
func NewProfileProvider(roots map[config.Browser]string, logger *slog.Logger) *ProfileProvider {
	return &ProfileProvider{
		roots:   roots,
		scanner: profiles.NewScanner(logger),
		cache:   make(map[config.Browser]profiles.Result),
	}
}

// Root returns the profile-storage directory for b.
func (p *ProfileProvider) Root(b config.Browser) (string, bool) {
	root, ok := p.roots[b]
	return root, ok
}

// Scan returns the scan of b's root, scanning on first call.
// Browsers without a root get an empty result.
func (p *ProfileProvider) Scan(b config.Browser) profiles.Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res, ok := p.cache[b]; ok {
		return res
	}

	res := profiles.Result{Dirs: make(profiles.Dirs)}
	if root, ok := p.roots[b]; ok {
		res = p.scanner.Scan(root)
		p.scanner.Logger.Debug("scanned profiles",
			"browser", b, "root", root, "discovered", res.Discovered, "skipped", res.Skipped)
	}
	p.cache[b] = res
	return res
}

// Profiles implements router.ProfileSource.
func (p *ProfileProvider) Profiles(b config.Browser) profiles.Dirs {
	return p.Scan(b).Dirs
}
