// SPDX-License-Identifier: MPL-2.0

// Package jdkhome locates a JDK installation suitable for building native
// JNI extensions.
//
// Discovery is an ordered fallback chain. JAVA_HOME is tried first and is
// trusted: it only needs an include directory. On Windows the installer's
// registry entry is tried next, also trusted. Finally the platform's
// conventional install locations are enumerated and each entry is checked
// heuristically, which additionally requires a JDK-like directory name.
// The first candidate that validates wins; there is no version ranking.
//
// When nothing validates, FindHome returns a *NoJDKFoundError listing every
// location that was examined, in order, so the caller can tell the user
// where it looked.
//
// The package never logs and never prompts. All filesystem access goes
// through an afero.Fs, and the environment and registry are injectable, so
// every platform's behavior can be exercised from any host.
//
// File organization:
//   - candidate.go: Candidate, TrustLevel, Home and Probe types
//   - finder.go: Finder construction and the FindHome chain
//   - validate.go: trusted and heuristic path validation
//   - candidates.go: per-platform enumeration and the strategy table
//   - registry*.go: Windows registry probe
//   - errors.go: NoJDKFoundError
package jdkhome
