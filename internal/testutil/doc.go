// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for building JDK layout fixtures and
// for manipulating the process environment in tests.
//
// Fixture helpers work on afero filesystems so discovery tests can lay out
// /usr/lib/jvm, Program Files or macOS bundles on any host without touching
// the real disk. Environment helpers (MustSetenv, MustUnsetenv) return
// cleanup functions that restore the previous state.
package testutil
