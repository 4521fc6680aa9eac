// SPDX-License-Identifier: MPL-2.0

package buildcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"jdkprobe/internal/jdkhome"
	"jdkprobe/pkg/platform"

	"github.com/spf13/afero"
)

// ErrEmptyHome is returned by Build when no JDK home was supplied.
var ErrEmptyHome = errors.New("empty JDK home")

type (
	// Builder turns a JDK home into a Configuration. It holds no mutable
	// state and may be shared between goroutines.
	Builder struct {
		fs     afero.Fs
		layout Layout
	}

	// SourceScanError is returned when a source directory exists but
	// cannot be walked.
	SourceScanError struct {
		Dir string
		Err error
	}

	// profile is the platform-specific part of a configuration.
	profile struct {
		includeDirs      func(l Layout, home jdkhome.Home) []string
		libraries        []string
		defines          []Define
		extraCompileArgs []string
	}
)

// profiles holds one entry per platform. Only Windows links against
// Advapi32 and needs MSVC exception semantics; everything else links dl.
var profiles = map[platform.Platform]profile{
	platform.Windows: {
		includeDirs: func(_ Layout, home jdkhome.Home) []string {
			return []string{home.Join("include"), home.Join("include", "win32")}
		},
		libraries:        []string{"Advapi32"},
		defines:          []Define{{Name: "WIN32", Value: "1"}},
		extraCompileArgs: []string{"/EHsc"},
	},
	platform.Darwin: {
		includeDirs: func(_ Layout, home jdkhome.Home) []string {
			return []string{home.Join("include"), home.Join("include", "darwin")}
		},
		libraries: []string{"dl"},
		defines:   []Define{{Name: "MACOSX", Value: "1"}},
	},
	platform.Linux: {
		includeDirs: func(_ Layout, home jdkhome.Home) []string {
			return []string{home.Join("include"), home.Join("include", "linux")}
		},
		libraries: []string{"dl"},
	},
	platform.Cygwin: {
		includeDirs: func(l Layout, home jdkhome.Home) []string {
			return []string{home.Join("include"), l.CompatDir, home.Join("include", "win32")}
		},
		libraries: []string{"dl"},
	},
}

// NewBuilder creates a Builder reading sources from fsys (the OS
// filesystem when nil) according to layout.
func NewBuilder(fsys afero.Fs, layout Layout) (*Builder, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	layout.SourceExtensions = slices.Clone(layout.SourceExtensions)
	return &Builder{fs: fsys, layout: layout}, nil
}

// Layout returns the layout the builder was created with.
func (b *Builder) Layout() Layout {
	l := b.layout
	l.SourceExtensions = slices.Clone(l.SourceExtensions)
	return l
}

// Build returns the configuration for compiling against home on p.
func (b *Builder) Build(p platform.Platform, home jdkhome.Home) (*Configuration, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if home == "" {
		return nil, ErrEmptyHome
	}

	sources, err := b.Sources()
	if err != nil {
		return nil, err
	}

	prof := profiles[p]
	includeDirs := []string{b.layout.commonInclude(), b.layout.bindingInclude()}
	return &Configuration{
		Platform:         p,
		Home:             home,
		IncludeDirs:      append(includeDirs, prof.includeDirs(b.layout, home)...),
		LibraryDirs:      []string{home.Join("lib")},
		Libraries:        slices.Clone(prof.libraries),
		Defines:          slices.Clone(prof.defines),
		ExtraCompileArgs: slices.Clone(prof.extraCompileArgs),
		Sources:          sources,
	}, nil
}

// Sources walks the common and binding directories and returns every file
// with a native source extension, sorted. A missing directory contributes
// nothing.
func (b *Builder) Sources() ([]string, error) {
	sources := []string{}
	for _, dir := range []string{b.layout.CommonDir, b.layout.BindingDir} {
		found, err := b.walkSources(dir)
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}
	slices.Sort(sources)
	return slices.Compact(sources), nil
}

func (b *Builder) walkSources(dir string) ([]string, error) {
	if ok, err := afero.DirExists(b.fs, dir); err != nil || !ok {
		return nil, nil
	}

	var found []string
	err := afero.Walk(b.fs, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() && slices.Contains(b.layout.SourceExtensions, filepath.Ext(path)) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, &SourceScanError{Dir: dir, Err: err}
	}
	return found, nil
}

// Error implements the error interface.
func (e *SourceScanError) Error() string {
	return fmt.Sprintf("scan native sources in %s: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying walk error.
func (e *SourceScanError) Unwrap() error { return e.Err }
