// SPDX-License-Identifier: MPL-2.0

package jdkhome

import (
	"path/filepath"
	"strings"

	"jdkprobe/pkg/platform"

	"github.com/spf13/afero"
)

// Conventional install locations.
const (
	linuxJVMRoot  = "/usr/lib/jvm"
	linuxJavaRoot = "/usr/java"

	darwinVMRoot         = "/Library/Java/JavaVirtualMachines"
	darwinJava6Framework = "/System/Library/Frameworks/JavaVM.framework/Versions/Current"
	darwinJava6SDK       = "/Developer/SDKs/MacOSX10.6.sdk/System/Library/Frameworks/JavaVM.framework/Versions/1.6.0"
	darwinLegacyHome     = "/Library/Java/Home"
)

// programFilesEnv lists the Windows install roots in probe order.
// ProgramFiles(x86) does not exist on 32-bit Windows.
var programFilesEnv = []string{"ProgramFiles", "ProgramFiles(x86)"}

// strategy bundles the per-platform override points of the chain.
type strategy struct {
	enumerate func(f *Finder) []Candidate
	validate  func(f *Finder, path string) (Home, bool)
	registry  bool
}

// strategies selects the behavior of each platform. Cygwin installs follow
// the Linux layout.
var strategies = map[platform.Platform]strategy{
	platform.Windows: {enumerate: enumerateWindows, validate: validateNamed, registry: true},
	platform.Darwin:  {enumerate: enumerateDarwin, validate: validateBundle},
	platform.Linux:   {enumerate: enumerateLinux, validate: validateNamed},
	platform.Cygwin:  {enumerate: enumerateLinux, validate: validateNamed},
}

func strategyFor(p platform.Platform) strategy {
	if s, ok := strategies[p]; ok {
		return s
	}
	return strategies[platform.Linux]
}

// Enumerate returns the heuristic candidates for p in probe order: the
// platform's conventional locations followed by configured search paths.
func (f *Finder) Enumerate(p platform.Platform) []Candidate {
	candidates := strategyFor(p).enumerate(f)
	for _, sp := range f.searchPaths {
		if hasMeta(sp) {
			candidates = append(candidates, f.glob(sp, SourceSearchPath)...)
			continue
		}
		candidates = append(candidates, Candidate{Path: sp, Trust: Heuristic, Source: SourceSearchPath})
	}
	return candidates
}

// RegistryHome returns the trusted candidate recorded in the Windows
// registry. Any registry failure, and any platform other than Windows,
// yields no candidate.
func (f *Finder) RegistryHome(p platform.Platform) (Candidate, bool) {
	if p != platform.Windows {
		return Candidate{}, false
	}
	path, ok := f.registry.RuntimeLib()
	if !ok || path == "" {
		return Candidate{}, false
	}
	return Candidate{Path: path, Trust: Trusted, Source: SourceRegistry}, true
}

func enumerateWindows(f *Finder) []Candidate {
	var candidates []Candidate
	for _, key := range programFilesEnv {
		root, ok := f.lookupEnv(key)
		if !ok || root == "" {
			continue
		}
		candidates = append(candidates, f.glob(filepath.Join(root, "Java", "*"), SourceGlob)...)
	}
	return candidates
}

func enumerateDarwin(f *Finder) []Candidate {
	candidates := f.glob(darwinVMRoot+"/*", SourceGlob)
	return append(candidates, Candidate{
		Path:   darwinLegacyPath(f.macOSVersion),
		Trust:  Heuristic,
		Source: SourceLegacy,
	})
}

// darwinLegacyPath picks the single pre-bundle location for a macOS release.
func darwinLegacyPath(version string) string {
	switch platform.MinorVersion(version) {
	case "10.7", "10.8":
		return darwinJava6Framework
	case "10.6":
		return darwinJava6SDK
	default:
		return darwinLegacyHome
	}
}

func enumerateLinux(f *Finder) []Candidate {
	candidates := f.glob(linuxJVMRoot+"/*", SourceGlob)
	return append(candidates, f.glob(linuxJavaRoot+"/*", SourceGlob)...)
}

// glob expands pattern in lexical order. Like shell globbing, entries whose
// name starts with a dot are skipped.
func (f *Finder) glob(pattern string, source Source) []Candidate {
	matches, err := afero.Glob(f.fs, pattern)
	if err != nil {
		return nil
	}
	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		candidates = append(candidates, Candidate{Path: m, Trust: Heuristic, Source: source})
	}
	return candidates
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}
