// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// exitFailure reports that no usable JDK or configuration was produced.
	exitFailure = 1
	// exitUsage reports an invalid configuration or flag value.
	exitUsage = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// A nil Err means the diagnostic has already been written to stderr.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
