// SPDX-License-Identifier: MPL-2.0

// Package buildcfg derives the native build configuration for a JNI
// extension from a discovered JDK home: include and library directories,
// link libraries, preprocessor defines, extra compiler arguments and the
// list of native sources to compile.
//
// The per-platform differences live in a single profile table. The project
// side of the configuration (where the shared headers, binding headers and
// sources live) is described by a Layout, which defaults to the classic
// native/common + native/python tree.
package buildcfg
