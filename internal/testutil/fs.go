// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// NewFixtureFS returns an in-memory filesystem containing dirs.
func NewFixtureFS(t testing.TB, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	MustMkdirAll(t, fs, dirs...)
	return fs
}

// MustMkdirAll creates every directory in dirs, with parents.
func MustMkdirAll(t testing.TB, fs afero.Fs, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := fs.MkdirAll(filepath.FromSlash(dir), 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}
}

// MustWriteFile writes data to path, creating parent directories.
func MustWriteFile(t testing.TB, fs afero.Fs, path string, data string) {
	t.Helper()
	path = filepath.FromSlash(path)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// MustMkdirAllOS creates dirs on the real filesystem below root.
func MustMkdirAllOS(t testing.TB, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		path := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", path, err)
		}
	}
}

// JDK returns the directories of a minimal JDK home at home: its include
// directory and the platform header directory named by osDir (e.g. "linux").
func JDK(home, osDir string) []string {
	return []string{
		home + "/include/" + osDir,
		home + "/lib",
	}
}

// MacBundle returns the directories of a macOS JDK bundle at bundle.
func MacBundle(bundle string) []string {
	return JDK(bundle+"/Contents/Home", "darwin")
}
