// SPDX-License-Identifier: MPL-2.0

package buildcfg

import (
	"strings"

	"jdkprobe/internal/jdkhome"
	"jdkprobe/pkg/platform"
)

type (
	// Define is a preprocessor macro. An empty Value defines the bare name.
	Define struct {
		Name  string `json:"name" yaml:"name" toml:"name"`
		Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	}

	// Configuration is everything a compiler driver needs to build the
	// native extension. LibraryDirs is non-empty only for a configuration
	// built from a discovered home, and its first entry is the JDK's own
	// lib directory.
	Configuration struct {
		Platform         platform.Platform `json:"platform" yaml:"platform" toml:"platform"`
		Home             jdkhome.Home      `json:"home" yaml:"home" toml:"home"`
		IncludeDirs      []string          `json:"include_dirs" yaml:"include_dirs" toml:"include_dirs"`
		LibraryDirs      []string          `json:"library_dirs" yaml:"library_dirs" toml:"library_dirs"`
		Libraries        []string          `json:"libraries" yaml:"libraries" toml:"libraries"`
		Defines          []Define          `json:"define_macros,omitempty" yaml:"define_macros,omitempty" toml:"define_macros,omitempty"`
		ExtraCompileArgs []string          `json:"extra_compile_args,omitempty" yaml:"extra_compile_args,omitempty" toml:"extra_compile_args,omitempty"`
		Sources          []string          `json:"sources" yaml:"sources" toml:"sources"`
	}

	// CompilerFlags is a Configuration rendered as command-line flags for a
	// cc-style driver.
	CompilerFlags struct {
		IncludeFlags []string // -I flags
		DefineFlags  []string // -D flags
		ExtraFlags   []string // extra compile arguments, verbatim
		LibraryFlags []string // -L flags
		LinkFlags    []string // -l flags
	}
)

// String renders the define as NAME or NAME=VALUE.
func (d Define) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// PrimaryLibraryDir returns the JDK lib directory, the first library dir.
func (c *Configuration) PrimaryLibraryDir() (string, bool) {
	if c == nil || len(c.LibraryDirs) == 0 {
		return "", false
	}
	return c.LibraryDirs[0], true
}

// Flags renders the configuration as compiler and linker flags. Extra
// compile arguments such as /EHsc are passed through unchanged.
func (c *Configuration) Flags() CompilerFlags {
	var f CompilerFlags
	for _, dir := range c.IncludeDirs {
		f.IncludeFlags = append(f.IncludeFlags, "-I"+dir)
	}
	for _, d := range c.Defines {
		f.DefineFlags = append(f.DefineFlags, "-D"+d.String())
	}
	f.ExtraFlags = append(f.ExtraFlags, c.ExtraCompileArgs...)
	for _, dir := range c.LibraryDirs {
		f.LibraryFlags = append(f.LibraryFlags, "-L"+dir)
	}
	for _, lib := range c.Libraries {
		f.LinkFlags = append(f.LinkFlags, "-l"+lib)
	}
	return f
}

// CFlags returns the compile-time flags in driver order.
func (f CompilerFlags) CFlags() []string {
	out := make([]string, 0, len(f.IncludeFlags)+len(f.DefineFlags)+len(f.ExtraFlags))
	out = append(out, f.IncludeFlags...)
	out = append(out, f.DefineFlags...)
	return append(out, f.ExtraFlags...)
}

// LDFlags returns the link-time flags in driver order.
func (f CompilerFlags) LDFlags() []string {
	out := make([]string, 0, len(f.LibraryFlags)+len(f.LinkFlags))
	out = append(out, f.LibraryFlags...)
	return append(out, f.LinkFlags...)
}

// String joins CFlags and LDFlags with spaces, suitable for a shell.
func (f CompilerFlags) String() string {
	return strings.Join(append(f.CFlags(), f.LDFlags()...), " ")
}
