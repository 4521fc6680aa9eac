// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"jdkprobe/internal/issue"

	"github.com/charmbracelet/fang"
)

// helpStyle is the glamour style used for issue catalog entries.
const helpStyle = "auto"

// report writes the diagnostic for err to stderr and returns an ExitError
// with a nil Err, which the fang error handler leaves alone. In verbose
// mode the catalog help for the error is rendered as well.
func (a *App) report(err error, verbose bool) error {
	if err == nil {
		return nil
	}

	code := exitFailure
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err == nil {
			return exitErr
		}
		code = exitErr.Code
		err = exitErr.Err
	}

	fmt.Fprintln(a.stderr, formatDiagnostic(err, verbose))

	var ae *issue.ActionableError
	if verbose && errors.As(err, &ae) {
		help, renderErr := ae.Help(helpStyle)
		if renderErr != nil {
			a.newLogger(verbose).Warn("failed to render issue catalog entry", "issue", ae.Issue, "error", renderErr)
		} else if help != "" {
			fmt.Fprint(a.stderr, help)
		}
	}
	return &ExitError{Code: code}
}

// formatDiagnostic renders err for the terminal. Only the headline is
// styled; detail lines stay plain so they can be copied.
func formatDiagnostic(err error, verbose bool) string {
	text := err.Error()
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		text = ae.Format(verbose)
	}

	headline, rest, _ := strings.Cut(text, "\n")
	out := ErrorStyle.Render("Error: " + headline)
	if rest != "" {
		out += "\n" + rest
	}
	return out
}

// handleError is the fang error handler. Errors already reported by a
// command are not printed again.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
