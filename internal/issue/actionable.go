// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing error messages.
	// It records what operation failed, what resource was involved, the
	// supporting details the user needs to see (such as every directory that
	// was searched), and suggestions for how to fix the issue. It may point at
	// a catalog Issue with longer Markdown help.
	//
	// Use the ErrorContext builder for convenient construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("find JDK").
	//		WithDetails(visited...).
	//		WithSuggestion("Set JAVA_HOME to the JDK installation directory").
	//		WithIssue(issue.NoJDKFoundId).
	//		Wrap(originalErr).
	//		Build()
	ActionableError struct {
		// Operation describes what was being attempted (e.g., "load config", "find JDK").
		Operation string

		// Resource identifies the file, path, or entity involved (optional).
		Resource string

		// DetailsTitle heads the Details list (optional).
		DetailsTitle string

		// Details are printed one per line below the message (optional).
		Details []string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Issue selects the catalog entry with extended help (optional).
		Issue Id

		// Cause is the underlying error that triggered this error (optional).
		Cause error
	}

	// ErrorContext is a builder for constructing ActionableError instances.
	//
	// Example:
	//
	//	ctx := issue.NewErrorContext().
	//		WithOperation("load config").
	//		WithResource("/etc/jdkprobe/config.cue")
	//
	//	// Later, when error occurs:
	//	return ctx.WithSuggestion("Check CUE syntax").Wrap(err).Build()
	ErrorContext struct {
		operation    string
		resource     string
		detailsTitle string
		details      []string
		suggestions  []string
		issue        Id
		cause        error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error implements the error interface.
// Returns a concise error message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns a formatted error message with optional verbosity.
//
// When verbose is false:
//
//	failed to <operation>: <resource>: <cause message>
//
//	<details title>:
//	  <detail 1>
//	  <detail 2>
//
//	  • <suggestion 1>
//
// When verbose is true, additionally includes the full error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Details) > 0 {
		msg.WriteString("\n")
		if e.DetailsTitle != "" {
			msg.WriteString("\n")
			msg.WriteString(e.DetailsTitle)
			msg.WriteString(":")
		}
		for _, detail := range e.Details {
			msg.WriteString("\n  ")
			msg.WriteString(detail)
		}
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// Help renders the catalog entry attached to the error. It returns "" when
// the error has no catalog entry.
func (e *ActionableError) Help(stylePath string) (string, error) {
	i := Get(e.Issue)
	if i == nil {
		return "", nil
	}
	return i.Render(stylePath)
}

// WithOperation sets the operation being performed.
// The operation should be a verb phrase like "load config" or "find JDK".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource (file, path, entity) involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithDetails appends lines listed below the message under title.
func (c *ErrorContext) WithDetails(title string, details ...string) *ErrorContext {
	c.detailsTitle = title
	c.details = append(c.details, details...)
	return c
}

// WithSuggestion adds a suggestion for how to fix the issue.
// Can be called multiple times to add multiple suggestions.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithIssue attaches the catalog entry rendered by Help.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.issue = id
	return c
}

// Wrap wraps an underlying error as the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates an ActionableError from the context.
// Returns nil if no operation is set (operation is required).
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}

	return &ActionableError{
		Operation:    c.operation,
		Resource:     c.resource,
		DetailsTitle: c.detailsTitle,
		Details:      c.details,
		Suggestions:  c.suggestions,
		Issue:        c.issue,
		Cause:        c.cause,
	}
}

// BuildError creates an ActionableError and returns it as an error interface.
// Returns nil if no operation is set.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
