// SPDX-License-Identifier: MPL-2.0

package jdkhome

import "path/filepath"

const (
	// Trusted candidates come from explicit configuration and only need an
	// include directory.
	Trusted TrustLevel = iota + 1
	// Heuristic candidates come from filesystem enumeration and must also
	// carry a JDK-like directory name.
	Heuristic
)

const (
	// SourceEnv marks the JAVA_HOME candidate.
	SourceEnv Source = "env"
	// SourceRegistry marks the Windows registry candidate.
	SourceRegistry Source = "registry"
	// SourceGlob marks candidates found by globbing an install root.
	SourceGlob Source = "glob"
	// SourceLegacy marks fixed legacy locations (old macOS releases).
	SourceLegacy Source = "legacy"
	// SourceSearchPath marks candidates from configured search paths.
	SourceSearchPath Source = "search_path"
)

type (
	// TrustLevel selects how strictly a candidate is validated.
	TrustLevel int

	// Source records where a candidate came from.
	Source string

	// Home is a validated JDK home directory. It is produced by Finder and
	// only read afterwards.
	Home string

	// Candidate is a directory that might be a JDK home.
	Candidate struct {
		Path   string
		Trust  TrustLevel
		Source Source
	}

	// Probe is the outcome of validating one candidate. Home is set only
	// when Accepted is true.
	Probe struct {
		Candidate Candidate
		Home      Home
		Accepted  bool
	}
)

// String returns "trusted" or "heuristic".
func (t TrustLevel) String() string {
	switch t {
	case Trusted:
		return "trusted"
	case Heuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// String returns the home path.
func (h Home) String() string { return string(h) }

// Join returns the path of elem inside the home directory.
func (h Home) Join(elem ...string) string {
	return filepath.Join(append([]string{string(h)}, elem...)...)
}
