// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Platform constants. Values match runtime.GOOS where one exists.
const (
	Windows Platform = "windows"
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Cygwin  Platform = "cygwin"
)

// ErrInvalidPlatform is the sentinel wrapped by InvalidPlatformError.
var ErrInvalidPlatform = errors.New("invalid platform")

type (
	// Platform names a host family with its own JDK layout conventions.
	Platform string

	// InvalidPlatformError is returned when a Platform value is not one of
	// the known families. It wraps ErrInvalidPlatform for errors.Is().
	InvalidPlatformError struct {
		Value Platform
	}
)

// aliases maps accepted spellings to a Platform.
var aliases = map[string]Platform{
	"windows": Windows,
	"win32":   Windows,
	"darwin":  Darwin,
	"macos":   Darwin,
	"osx":     Darwin,
	"linux":   Linux,
	"posix":   Linux,
	"cygwin":  Cygwin,
}

// All returns the known platforms in a stable order.
func All() []Platform {
	return []Platform{Windows, Darwin, Linux, Cygwin}
}

// Parse converts a user-supplied name (case-insensitive, aliases allowed)
// into a Platform.
func Parse(s string) (Platform, error) {
	p, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", &InvalidPlatformError{Value: Platform(s)}
	}
	return p, nil
}

// String returns the platform name.
func (p Platform) String() string { return string(p) }

// Validate returns an InvalidPlatformError when p is not a known platform.
func (p Platform) Validate() error {
	switch p {
	case Windows, Darwin, Linux, Cygwin:
		return nil
	default:
		return &InvalidPlatformError{Value: p}
	}
}

// Error implements the error interface.
func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid platform %q (valid: windows, darwin, linux, cygwin)", e.Value)
}

// Unwrap returns ErrInvalidPlatform so that errors.Is works.
func (e *InvalidPlatformError) Unwrap() error { return ErrInvalidPlatform }
