// SPDX-License-Identifier: MPL-2.0

package buildcfg

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"jdkprobe/internal/jdkhome"
	"jdkprobe/internal/testutil"
	"jdkprobe/pkg/platform"

	"github.com/spf13/afero"
)

// openFailFs fails to open one directory while still reporting it as
// present.
type openFailFs struct {
	afero.Fs
	dir string
}

func (f openFailFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == f.dir {
		return nil, os.ErrPermission
	}
	return f.Fs.Open(name)
}

func mustBuilder(t *testing.T, fs afero.Fs, layout Layout) *Builder {
	t.Helper()
	b, err := NewBuilder(fs, layout)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	return b
}

func TestBuild_PlatformProfiles(t *testing.T) {
	t.Parallel()

	home := jdkhome.Home(filepath.FromSlash("/jdk"))
	layout := DefaultLayout()
	common := filepath.Join("native", "common", "include")
	binding := filepath.Join("native", "python", "include")

	tests := []struct {
		platform    platform.Platform
		includeDirs []string
		libraries   []string
		defines     []Define
		extra       []string
	}{
		{
			platform:    platform.Windows,
			includeDirs: []string{common, binding, home.Join("include"), home.Join("include", "win32")},
			libraries:   []string{"Advapi32"},
			defines:     []Define{{Name: "WIN32", Value: "1"}},
			extra:       []string{"/EHsc"},
		},
		{
			platform:    platform.Darwin,
			includeDirs: []string{common, binding, home.Join("include"), home.Join("include", "darwin")},
			libraries:   []string{"dl"},
			defines:     []Define{{Name: "MACOSX", Value: "1"}},
		},
		{
			platform:    platform.Linux,
			includeDirs: []string{common, binding, home.Join("include"), home.Join("include", "linux")},
			libraries:   []string{"dl"},
		},
		{
			platform:    platform.Cygwin,
			includeDirs: []string{common, binding, home.Join("include"), filepath.Join("native", "cygwin"), home.Join("include", "win32")},
			libraries:   []string{"dl"},
		},
	}

	b := mustBuilder(t, afero.NewMemMapFs(), layout)
	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			t.Parallel()

			cfg, err := b.Build(tt.platform, home)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if !slices.Equal(cfg.IncludeDirs, tt.includeDirs) {
				t.Errorf("IncludeDirs = %q, want %q", cfg.IncludeDirs, tt.includeDirs)
			}
			if want := []string{home.Join("lib")}; !slices.Equal(cfg.LibraryDirs, want) {
				t.Errorf("LibraryDirs = %q, want %q", cfg.LibraryDirs, want)
			}
			if !slices.Equal(cfg.Libraries, tt.libraries) {
				t.Errorf("Libraries = %q, want %q", cfg.Libraries, tt.libraries)
			}
			if !slices.Equal(cfg.Defines, tt.defines) {
				t.Errorf("Defines = %v, want %v", cfg.Defines, tt.defines)
			}
			if !slices.Equal(cfg.ExtraCompileArgs, tt.extra) {
				t.Errorf("ExtraCompileArgs = %q, want %q", cfg.ExtraCompileArgs, tt.extra)
			}
			if cfg.Platform != tt.platform || cfg.Home != home {
				t.Errorf("Platform, Home = %q, %q; want %q, %q", cfg.Platform, cfg.Home, tt.platform, home)
			}
		})
	}
}

func TestBuild_LinuxLibraryDir(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, testutil.JDK("/usr/lib/jvm/java-11-openjdk", "linux")...)
	f := jdkhome.NewFinder(
		jdkhome.WithFS(fs),
		jdkhome.WithLookupEnv(testutil.LookupEnv(nil)),
	)
	home, err := f.FindHome(platform.Linux)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}

	cfg, err := mustBuilder(t, fs, DefaultLayout()).Build(platform.Linux, home)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := []string{"/usr/lib/jvm/java-11-openjdk/lib"}
	if !slices.Equal(cfg.LibraryDirs, want) {
		t.Errorf("LibraryDirs = %q, want %q", cfg.LibraryDirs, want)
	}
	if dir, ok := cfg.PrimaryLibraryDir(); !ok || dir != want[0] {
		t.Errorf("PrimaryLibraryDir() = %q, %v; want %q, true", dir, ok, want[0])
	}
}

func TestBuild_Rejects(t *testing.T) {
	t.Parallel()

	b := mustBuilder(t, afero.NewMemMapFs(), DefaultLayout())

	if _, err := b.Build(platform.Linux, ""); !errors.Is(err, ErrEmptyHome) {
		t.Errorf("Build(empty home) error = %v, want ErrEmptyHome", err)
	}
	if _, err := b.Build(platform.Platform("plan9"), "/jdk"); !errors.Is(err, platform.ErrInvalidPlatform) {
		t.Errorf("Build(plan9) error = %v, want ErrInvalidPlatform", err)
	}
}

func TestBuild_ResultIsIndependent(t *testing.T) {
	t.Parallel()

	b := mustBuilder(t, afero.NewMemMapFs(), DefaultLayout())
	first, err := b.Build(platform.Windows, "/jdk")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	first.Libraries[0] = "mutated"
	first.Defines[0].Name = "mutated"

	second, err := b.Build(platform.Windows, "/jdk")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if second.Libraries[0] != "Advapi32" || second.Defines[0].Name != "WIN32" {
		t.Errorf("second Build() saw mutation of the first: %+v", second)
	}
}

func TestSources(t *testing.T) {
	t.Parallel()

	layout := Layout{
		CommonDir:        "/work/native/common",
		BindingDir:       "/work/native/python",
		CompatDir:        "/work/native/cygwin",
		SourceExtensions: []string{".cpp", ".cc"},
	}

	fs := afero.NewMemMapFs()
	for _, file := range []string{
		"/work/native/python/src/module.cpp",
		"/work/native/common/jp_env.cpp",
		"/work/native/common/sub/deep/jp_array.cc",
		"/work/native/common/include/jp_env.h",
		"/work/native/common/README.md",
		"/work/native/cygwin/ignored.cpp",
	} {
		testutil.MustWriteFile(t, fs, file, "// source\n")
	}
	testutil.MustMkdirAll(t, fs, "/work/native/common/dir.cpp")

	got, err := mustBuilder(t, fs, layout).Sources()
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	want := []string{
		filepath.FromSlash("/work/native/common/jp_env.cpp"),
		filepath.FromSlash("/work/native/common/sub/deep/jp_array.cc"),
		filepath.FromSlash("/work/native/python/src/module.cpp"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Sources() = %q, want %q", got, want)
	}
}

func TestSources_MissingDirsContributeNothing(t *testing.T) {
	t.Parallel()

	got, err := mustBuilder(t, afero.NewMemMapFs(), DefaultLayout()).Sources()
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Sources() = %#v, want an empty non-nil list", got)
	}
}

func TestSources_ScanError(t *testing.T) {
	t.Parallel()

	base := testutil.NewFixtureFS(t, "/work/common", "/work/binding")
	layout := Layout{
		CommonDir:        "/work/common",
		BindingDir:       "/work/binding",
		CompatDir:        "/work/compat",
		SourceExtensions: []string{".cpp"},
	}
	b := mustBuilder(t, openFailFs{Fs: base, dir: filepath.FromSlash("/work/binding")}, layout)

	_, err := b.Sources()
	var scanErr *SourceScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("Sources() error = %v, want *SourceScanError", err)
	}
	if scanErr.Dir != "/work/binding" || !errors.Is(err, os.ErrPermission) {
		t.Errorf("SourceScanError = %+v, want binding dir wrapping ErrPermission", scanErr)
	}
}
