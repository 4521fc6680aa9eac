// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package platform

import "golang.org/x/sys/unix"

// MacOSVersion returns the macOS product version (e.g. "14.4.1"), or an
// empty string when the kernel does not expose it.
func MacOSVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return v
}
