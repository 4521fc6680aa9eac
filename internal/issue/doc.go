// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the operation that failed, the details the user must
// see and remediation hints. Longer guidance lives in a catalog of Markdown
// issues rendered with glamour.
package issue
