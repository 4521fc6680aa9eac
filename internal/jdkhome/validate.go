// SPDX-License-Identifier: MPL-2.0

package jdkhome

import (
	"path/filepath"
	"strings"

	"jdkprobe/pkg/platform"
)

var (
	// jdkNameTokens are the substrings a heuristic candidate's directory
	// name must contain on Windows, Linux and Cygwin.
	jdkNameTokens = []string{"jdk", "java", "icedtea"}

	// bundleNameTokens is the stricter macOS rule: only "*.jdk" style
	// bundles qualify.
	bundleNameTokens = []string{"jdk"}
)

// Validate reports whether path is a usable JDK home on p and returns the
// canonical home.
//
// A trusted path only needs an include directory. A heuristic path must
// also have a JDK-like name; on macOS it must be a bundle whose actual home
// is Contents/Home, and that inner directory is what gets returned. An
// unknown platform is validated with the Linux rules.
func (f *Finder) Validate(p platform.Platform, path string, trust TrustLevel) (Home, bool) {
	if path == "" {
		return "", false
	}
	if trust == Trusted {
		return f.validateTrusted(path)
	}
	return strategyFor(p).validate(f, path)
}

func (f *Finder) validateTrusted(path string) (Home, bool) {
	if !f.isDir(filepath.Join(path, "include")) {
		return "", false
	}
	canonical, err := f.realpath(path)
	if err != nil {
		return "", false
	}
	return Home(canonical), true
}

// validateNamed is the heuristic check for Windows, Linux and Cygwin.
func validateNamed(f *Finder, path string) (Home, bool) {
	canonical, err := f.realpath(path)
	if err != nil {
		return "", false
	}
	if !nameMatches(path, canonical, jdkNameTokens) {
		return "", false
	}
	if !f.isDir(filepath.Join(canonical, "include")) {
		return "", false
	}
	return Home(canonical), true
}

// validateBundle is the heuristic check for macOS bundles.
func validateBundle(f *Finder, path string) (Home, bool) {
	canonical, err := f.realpath(path)
	if err != nil {
		return "", false
	}
	if !nameMatches(path, canonical, bundleNameTokens) || !f.isDir(canonical) {
		return "", false
	}
	home := filepath.Join(canonical, "Contents", "Home")
	if !f.isDir(home) || !f.isDir(filepath.Join(home, "include")) {
		return "", false
	}
	return Home(home), true
}

// nameMatches checks the directory name of the candidate as given and,
// when different, of its canonical form.
func nameMatches(path, canonical string, tokens []string) bool {
	if baseContainsAny(path, tokens) {
		return true
	}
	return canonical != path && baseContainsAny(canonical, tokens)
}

func baseContainsAny(path string, tokens []string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, token := range tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}
