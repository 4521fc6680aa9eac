// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"sync"
)

// detectOnce caches the detected platform; the host family cannot change
// while the process runs.
var detectOnce = sync.OnceValue(func() Platform {
	return detectFrom(runtime.GOOS)
})

// Detect returns the platform of the running process.
//
// A Go binary is always a native Windows program on Windows, even when it is
// started from a Cygwin shell or the CYGWIN variable is set, so Cygwin is
// never detected and must be selected explicitly. Any GOOS that is neither
// windows nor darwin is treated as Linux, the generic POSIX layout.
func Detect() Platform {
	return detectOnce()
}

func detectFrom(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Linux
	}
}

// MinorVersion returns the "major.minor" prefix used to pick legacy macOS
// JDK locations: the first four characters of v ("10.7.5" -> "10.7").
// Shorter strings are returned unchanged.
func MinorVersion(v string) string {
	if len(v) <= 4 {
		return v
	}
	return v[:4]
}
