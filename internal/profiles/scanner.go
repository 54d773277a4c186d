// Package profiles discovers Chromium browser profiles on disk and maps
// their display names to the directory identifiers the browser expects in
// --profile-directory.
package profiles

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

const (
	// MetadataFile is the per-profile settings file Chromium writes.
	MetadataFile = "Preferences"
	// Marker appears in the directory name of every non-default profile.
	Marker = "Profile"
)

// Dirs maps profile display name to profile directory identifier.
type Dirs map[string]string

// Result is the outcome of a scan. Discovered counts metadata files that
// yielded a name; Skipped counts entries that could not be walked or parsed.
type Result struct {
	Dirs       Dirs
	Discovered int
	Skipped    int
}

// Scanner walks a browser's profile-storage tree.
type Scanner struct {
	MetadataFile string
	Marker       string
	Logger       *slog.Logger
}

// NewScanner returns a Scanner for Chromium's layout.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		MetadataFile: MetadataFile,
		Marker:       Marker,
		Logger:       logger,
	}
}

// preferences is the subset of the metadata file we read.
type preferences struct {
	Profile struct {
		Name *string `json:"name"`
	} `json:"profile"`
}

// Scan never fails. A missing root yields an empty result and every
// unreadable entry is counted in Skipped.
func (s *Scanner) Scan(root string) Result {
	w := s.newWalk(root)

	if _, err := os.Stat(root); err != nil {
		s.Logger.Debug("profile root unavailable", "root", root, "err", err)
		return w.res
	}

	conf := fastwalk.Config{Follow: false}
	if err := fastwalk.Walk(&conf, root, w.visit); err != nil {
		s.Logger.Debug("profile walk ended early", "root", root, "err", err)
	}

	return w.res
}

// walk is the state of one Scan. fastwalk calls visit concurrently.
type walk struct {
	s    *Scanner
	root string

	mu  sync.Mutex
	res Result
}

func (s *Scanner) newWalk(root string) *walk {
	return &walk{s: s, root: root, res: Result{Dirs: make(Dirs)}}
}

func (w *walk) visit(p string, d fs.DirEntry, err error) error {
	if err != nil {
		w.skip()
		w.s.Logger.Debug("skipping entry", "path", p, "err", err)
		if d != nil && d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if !d.Type().IsRegular() || d.Name() != w.s.MetadataFile {
		return nil
	}

	dir := filepath.Dir(p)
	rel, relErr := filepath.Rel(w.root, dir)
	if relErr != nil || !strings.Contains(rel, w.s.Marker) {
		return nil
	}

	name, ok := w.s.readName(p)
	if !ok {
		w.skip()
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.res.Dirs[name] = filepath.Base(dir)
	w.res.Discovered++
	return nil
}

func (w *walk) skip() {
	w.mu.Lock()
	w.res.Skipped++
	w.mu.Unlock()
}

func (s *Scanner) readName(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.Logger.Debug("skipping unreadable metadata", "path", path, "err", err)
		return "", false
	}

	var prefs preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.Logger.Debug("skipping malformed metadata", "path", path, "err", err)
		return "", false
	}
	if prefs.Profile.Name == nil {
		s.Logger.Debug("metadata has no profile name", "path", path)
		return "", false
	}

	return *prefs.Profile.Name, true
}
