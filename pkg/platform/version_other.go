// SPDX-License-Identifier: MPL-2.0

//go:build !darwin

package platform

// MacOSVersion returns an empty string on non-darwin hosts.
func MacOSVersion() string {
	return ""
}
