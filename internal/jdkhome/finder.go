// SPDX-License-Identifier: MPL-2.0

package jdkhome

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jdkprobe/pkg/platform"

	"github.com/spf13/afero"
)

// JavaHomeEnv is the environment variable consulted before anything else.
const JavaHomeEnv = "JAVA_HOME"

type (
	// LookupEnvFunc has the signature of os.LookupEnv.
	LookupEnvFunc func(key string) (string, bool)

	// RealpathFunc canonicalizes a path, resolving symlinks.
	RealpathFunc func(path string) (string, error)

	// Finder runs JDK discovery. A Finder holds no mutable state once
	// constructed and may be shared between goroutines.
	Finder struct {
		fs           afero.Fs
		realpath     RealpathFunc
		lookupEnv    LookupEnvFunc
		registry     RegistryReader
		macOSVersion string
		searchPaths  []string
		trace        func(Probe)
	}

	// Option configures a Finder.
	Option func(*Finder)
)

// WithFS sets the filesystem probed for candidates. Unless WithRealpath is
// also given, paths on a non-OS filesystem are canonicalized lexically.
func WithFS(fs afero.Fs) Option {
	return func(f *Finder) { f.fs = fs }
}

// WithRealpath overrides path canonicalization.
func WithRealpath(fn RealpathFunc) Option {
	return func(f *Finder) { f.realpath = fn }
}

// WithSysroot confines probing to root: every candidate path is read
// relative to it, and resolved homes are reported as seen from inside it.
func WithSysroot(root string) Option {
	return func(f *Finder) {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			root = resolved
		}
		f.fs = afero.NewBasePathFs(afero.NewOsFs(), root)
		f.realpath = sysrootRealpath(root)
	}
}

// WithLookupEnv overrides environment access (JAVA_HOME, ProgramFiles...).
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(f *Finder) { f.lookupEnv = fn }
}

// WithRegistry overrides the Windows registry reader.
func WithRegistry(r RegistryReader) Option {
	return func(f *Finder) { f.registry = r }
}

// WithMacOSVersion overrides the macOS product version used to pick the
// legacy candidate location.
func WithMacOSVersion(v string) Option {
	return func(f *Finder) { f.macOSVersion = v }
}

// WithSearchPaths appends extra heuristic candidates, probed after the
// platform's own locations. Entries may be glob patterns.
func WithSearchPaths(paths ...string) Option {
	return func(f *Finder) { f.searchPaths = append(f.searchPaths, paths...) }
}

// WithTrace registers fn to observe every probe of the chain. It cannot
// influence the outcome.
func WithTrace(fn func(Probe)) Option {
	return func(f *Finder) { f.trace = fn }
}

// NewFinder creates a Finder that probes the host by default.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		lookupEnv:    os.LookupEnv,
		registry:     SystemRegistry(),
		macOSVersion: platform.MacOSVersion(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.fs == nil {
		f.fs = afero.NewOsFs()
	}
	if f.realpath == nil {
		if _, ok := f.fs.(*afero.OsFs); ok {
			f.realpath = evalRealpath
		} else {
			f.realpath = lexicalRealpath
		}
	}
	if f.registry == nil {
		f.registry = noRegistry{}
	}
	return f
}

// FindHome runs the fallback chain for p and returns the first valid home:
// JAVA_HOME (trusted), then the registry on Windows (trusted), then every
// enumerated candidate (heuristic). On total failure it returns a
// *NoJDKFoundError carrying the visited locations.
func (f *Finder) FindHome(p platform.Platform) (Home, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	javaHome, _ := f.lookupEnv(JavaHomeEnv)
	if home, ok := f.probe(p, Candidate{Path: javaHome, Trust: Trusted, Source: SourceEnv}); ok {
		return home, nil
	}
	visited := []string{javaHome}

	if strategyFor(p).registry {
		if c, ok := f.RegistryHome(p); ok {
			if home, ok := f.probe(p, c); ok {
				return home, nil
			}
		}
	}

	for _, c := range f.Enumerate(p) {
		if home, ok := f.probe(p, c); ok {
			return home, nil
		}
		visited = append(visited, c.Path)
	}

	return "", &NoJDKFoundError{Platform: p, Visited: visited}
}

// Survey validates every candidate of the chain for p, in chain order,
// without stopping at the first success. The first accepted probe is the
// home FindHome would return. The trace hook is not called.
func (f *Finder) Survey(p platform.Platform) ([]Probe, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	javaHome, _ := f.lookupEnv(JavaHomeEnv)
	candidates := []Candidate{{Path: javaHome, Trust: Trusted, Source: SourceEnv}}
	if strategyFor(p).registry {
		if c, ok := f.RegistryHome(p); ok {
			candidates = append(candidates, c)
		}
	}
	candidates = append(candidates, f.Enumerate(p)...)

	probes := make([]Probe, 0, len(candidates))
	for _, c := range candidates {
		home, ok := f.Validate(p, c.Path, c.Trust)
		probes = append(probes, Probe{Candidate: c, Home: home, Accepted: ok})
	}
	return probes, nil
}

func (f *Finder) probe(p platform.Platform, c Candidate) (Home, bool) {
	home, ok := f.Validate(p, c.Path, c.Trust)
	if f.trace != nil {
		f.trace(Probe{Candidate: c, Home: home, Accepted: ok})
	}
	return home, ok
}

func (f *Finder) isDir(path string) bool {
	ok, err := afero.DirExists(f.fs, path)
	return err == nil && ok
}

func evalRealpath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// lexicalRealpath is used for in-memory filesystems, which have no symlinks.
func lexicalRealpath(path string) (string, error) {
	return filepath.Clean(path), nil
}

// sysrootRealpath resolves symlinks on the host below root and maps the
// result back to a root-relative absolute path.
func sysrootRealpath(root string) RealpathFunc {
	return func(path string) (string, error) {
		resolved, err := filepath.EvalSymlinks(filepath.Join(root, path))
		if err != nil {
			return "", err
		}
		rel, err := filepath.Rel(root, resolved)
		if err != nil {
			return "", err
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%s resolves outside sysroot %s", path, root)
		}
		return filepath.Join(string(filepath.Separator), rel), nil
	}
}
