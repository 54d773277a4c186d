package profiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrefs(t *testing.T, root, dir, contents string) {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(full, MetadataFile), []byte(contents), 0600))
}

func named(name string) string {
	return fmt.Sprintf(`{"profile":{"name":%q,"avatar_index":3},"browser":{"window_placement":{}}}`, name)
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Personal"))
	writePrefs(t, root, "Profile 3", named("Work"))
	writePrefs(t, root, "Default", named("Root"))
	writePrefs(t, root, "System Profile", named("System"))

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{
		"Personal": "Profile 1",
		"Work":     "Profile 3",
		"System":   "System Profile",
	}, res.Dirs)
	assert.Equal(t, 3, res.Discovered)
	assert.Equal(t, 0, res.Skipped)
}

func TestScanSkipsBadMetadata(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Good"))
	writePrefs(t, root, "Profile 2", `{not json`)
	writePrefs(t, root, "Profile 4", `{"profile":{}}`)
	writePrefs(t, root, "Profile 5", `{"profile":{"name":42}}`)
	writePrefs(t, root, "Profile 6", `{"profile":"flat"}`)

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{"Good": "Profile 1"}, res.Dirs)
	assert.Equal(t, 1, res.Discovered)
	assert.Equal(t, 4, res.Skipped)
}

func TestScanIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Personal"))

	other := filepath.Join(root, "Profile 1", "Secure Preferences")
	require.NoError(t, os.WriteFile(other, []byte(named("Shadow")), 0600))
	// A directory named like the metadata file is not a regular file.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Profile 9", MetadataFile), 0700))

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{"Personal": "Profile 1"}, res.Dirs)
}

func TestScanMarkerIsRelativeToRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Profile Storage")
	writePrefs(t, root, "Default", named("Root"))
	writePrefs(t, root, "Profile 2", named("Second"))

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{"Second": "Profile 2"}, res.Dirs)
}

func TestScanNested(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, filepath.Join("Profile 7", "Nested"), named("Deep"))

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{"Deep": "Nested"}, res.Dirs)
}

func TestScanDuplicateNames(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Same"))
	writePrefs(t, root, "Profile 2", named("Same"))

	res := NewScanner(nil).Scan(root)

	require.Len(t, res.Dirs, 1)
	assert.Contains(t, []string{"Profile 1", "Profile 2"}, res.Dirs["Same"])
	assert.Equal(t, 2, res.Discovered)
}

func TestScanMissingRoot(t *testing.T) {
	res := NewScanner(nil).Scan(filepath.Join(t.TempDir(), "absent"))

	assert.Empty(t, res.Dirs)
	assert.NotNil(t, res.Dirs)
	assert.Zero(t, res.Discovered)
	assert.Zero(t, res.Skipped)
}

func TestScanSkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}

	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Personal"))
	writePrefs(t, root, filepath.Join("Profile 2", "Locked"), named("Hidden"))
	locked := filepath.Join(root, "Profile 2", "Locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0700) })

	res := NewScanner(nil).Scan(root)

	assert.Equal(t, Dirs{"Personal": "Profile 1"}, res.Dirs)
	assert.Equal(t, 1, res.Discovered)
	assert.Positive(t, res.Skipped)
}

func TestWalkCountsEntryErrors(t *testing.T) {
	root := t.TempDir()
	writePrefs(t, root, "Profile 1", named("Personal"))
	prefs := filepath.Join(root, "Profile 1", MetadataFile)

	dirInfo, err := os.Stat(filepath.Join(root, "Profile 1"))
	require.NoError(t, err)
	fileInfo, err := os.Stat(prefs)
	require.NoError(t, err)

	w := NewScanner(nil).newWalk(root)
	denied := errors.New("permission denied")

	assert.Equal(t, filepath.SkipDir, w.visit(filepath.Join(root, "Profile 9"), fs.FileInfoToDirEntry(dirInfo), denied))
	assert.NoError(t, w.visit(filepath.Join(root, "Profile 8", MetadataFile), fs.FileInfoToDirEntry(fileInfo), denied))
	assert.NoError(t, w.visit(filepath.Join(root, "gone"), nil, denied))
	assert.NoError(t, w.visit(prefs, fs.FileInfoToDirEntry(fileInfo), nil))

	assert.Equal(t, 3, w.res.Skipped)
	assert.Equal(t, 1, w.res.Discovered)
	assert.Equal(t, Dirs{"Personal": "Profile 1"}, w.res.Dirs)
}

func TestScanIsRepeatable(t *testing.T) {
	root := t.TempDir()
	const n = 12
	for i := 1; i <= n; i++ {
		writePrefs(t, root, fmt.Sprintf("Profile %d", i), named(fmt.Sprintf("user-%d", i)))
	}

	s := NewScanner(nil)
	first := s.Scan(root)
	second := s.Scan(root)

	assert.Len(t, first.Dirs, n)
	assert.Equal(t, first.Dirs, second.Dirs)
	assert.Equal(t, "Profile 5", first.Dirs["user-5"])
}
