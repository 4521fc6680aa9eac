// SPDX-License-Identifier: MPL-2.0

// Package platform identifies the host family a JDK is probed on.
//
// The four families (Windows, macOS, Linux, Cygwin) select the candidate
// locations, validation rules and native build settings used downstream.
// A Platform is fixed for the lifetime of a run: it is either detected once
// from the running process or supplied explicitly by the caller.
package platform
