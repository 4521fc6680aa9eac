// SPDX-License-Identifier: MPL-2.0

//go:build windows

package jdkhome

import "golang.org/x/sys/windows/registry"

// jreKeyPath is the HKLM key maintained by the JRE installer.
const jreKeyPath = `SOFTWARE\JavaSoft\Java Runtime Environment`

type windowsRegistry struct{}

// SystemRegistry returns a reader for the local machine registry.
func SystemRegistry() RegistryReader {
	return windowsRegistry{}
}

// RuntimeLib follows CurrentVersion to the version subkey and returns its
// RuntimeLib value.
func (windowsRegistry) RuntimeLib() (string, bool) {
	jre, err := registry.OpenKey(registry.LOCAL_MACHINE, jreKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer closeKey(jre)

	current, _, err := jre.GetStringValue("CurrentVersion")
	if err != nil || current == "" {
		return "", false
	}

	version, err := registry.OpenKey(jre, current, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer closeKey(version)

	lib, _, err := version.GetStringValue("RuntimeLib")
	if err != nil || lib == "" {
		return "", false
	}
	return lib, true
}

func closeKey(k registry.Key) {
	_ = k.Close() // Read-only handle; nothing to recover on close failure
}
