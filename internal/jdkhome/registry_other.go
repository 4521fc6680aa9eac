// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package jdkhome

// SystemRegistry returns a reader that never finds an entry; only Windows
// has a registry.
func SystemRegistry() RegistryReader {
	return noRegistry{}
}
