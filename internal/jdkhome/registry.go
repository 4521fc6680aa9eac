// SPDX-License-Identifier: MPL-2.0

package jdkhome

type (
	// RegistryReader reads the runtime library location recorded by the
	// Windows JRE installer. A missing key, a missing value and an access
	// error all report ok == false; none of them is an error.
	RegistryReader interface {
		RuntimeLib() (path string, ok bool)
	}

	// RegistryFunc adapts a function to RegistryReader.
	RegistryFunc func() (string, bool)

	noRegistry struct{}
)

// RuntimeLib calls fn.
func (fn RegistryFunc) RuntimeLib() (string, bool) { return fn() }

func (noRegistry) RuntimeLib() (string, bool) { return "", false }
