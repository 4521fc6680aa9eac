// SPDX-License-Identifier: MPL-2.0

package jdkhome

import (
	"errors"
	"fmt"
	"slices"

	"jdkprobe/pkg/platform"
)

// ErrNoJDKFound is the sentinel wrapped by NoJDKFoundError.
var ErrNoJDKFound = errors.New("no JDK found")

// NoJDKFoundError reports a discovery run in which no candidate validated.
// Visited holds, in the order they were tried, the JAVA_HOME value (empty
// when unset) followed by every enumerated location. Registry misses are
// not recorded.
type NoJDKFoundError struct {
	Platform platform.Platform
	Visited  []string
}

// Error implements the error interface.
func (e *NoJDKFoundError) Error() string {
	return fmt.Sprintf("no JDK found on %s (%d locations checked)", e.Platform, len(e.Visited))
}

// Unwrap returns ErrNoJDKFound so that errors.Is works.
func (e *NoJDKFoundError) Unwrap() error { return ErrNoJDKFound }

// VisitedPaths returns a copy of the visited locations.
func (e *NoJDKFoundError) VisitedPaths() []string {
	return slices.Clone(e.Visited)
}
