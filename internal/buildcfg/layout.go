// SPDX-License-Identifier: MPL-2.0

package buildcfg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidLayout is the sentinel wrapped by InvalidLayoutError.
var ErrInvalidLayout = errors.New("invalid native layout")

type (
	// Layout locates the project's native tree. Directories are relative to
	// the working directory unless absolute.
	Layout struct {
		// CommonDir holds the shared JNI interop code; its include
		// subdirectory is always on the include path.
		CommonDir string `json:"common_dir" yaml:"common_dir" toml:"common_dir"`
		// BindingDir holds the language binding code; its include
		// subdirectory is always on the include path.
		BindingDir string `json:"binding_dir" yaml:"binding_dir" toml:"binding_dir"`
		// CompatDir holds the compatibility headers added on Cygwin.
		CompatDir string `json:"compat_dir" yaml:"compat_dir" toml:"compat_dir"`
		// SourceExtensions are the file extensions, dot included, that mark
		// a native source file.
		SourceExtensions []string `json:"source_extensions" yaml:"source_extensions" toml:"source_extensions"`
	}

	// InvalidLayoutError is returned by Layout.Validate.
	InvalidLayoutError struct {
		Field  string
		Reason string
	}
)

// DefaultLayout returns the native tree used by the original project.
func DefaultLayout() Layout {
	return Layout{
		CommonDir:        filepath.Join("native", "common"),
		BindingDir:       filepath.Join("native", "python"),
		CompatDir:        filepath.Join("native", "cygwin"),
		SourceExtensions: []string{".cpp"},
	}
}

// Validate checks that every directory is set and that every source
// extension starts with a dot.
func (l Layout) Validate() error {
	dirs := []struct {
		field string
		value string
	}{
		{"common_dir", l.CommonDir},
		{"binding_dir", l.BindingDir},
		{"compat_dir", l.CompatDir},
	}
	for _, d := range dirs {
		if strings.TrimSpace(d.value) == "" {
			return &InvalidLayoutError{Field: d.field, Reason: "must not be empty"}
		}
	}
	if len(l.SourceExtensions) == 0 {
		return &InvalidLayoutError{Field: "source_extensions", Reason: "must list at least one extension"}
	}
	for _, ext := range l.SourceExtensions {
		if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext, `/\`) {
			return &InvalidLayoutError{Field: "source_extensions", Reason: fmt.Sprintf("%q is not a file extension like \".cpp\"", ext)}
		}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid native layout: %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidLayout so that errors.Is works.
func (e *InvalidLayoutError) Unwrap() error { return ErrInvalidLayout }

func (l Layout) commonInclude() string  { return filepath.Join(l.CommonDir, "include") }
func (l Layout) bindingInclude() string { return filepath.Join(l.BindingDir, "include") }
