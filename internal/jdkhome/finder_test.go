// SPDX-License-Identifier: MPL-2.0

package jdkhome

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"jdkprobe/internal/testutil"
	"jdkprobe/pkg/platform"

	"github.com/spf13/afero"
)

// newTestFinder builds a Finder over fs with a fixed environment and no
// registry entry.
func newTestFinder(fs afero.Fs, env map[string]string, opts ...Option) *Finder {
	base := []Option{
		WithFS(fs),
		WithLookupEnv(testutil.LookupEnv(env)),
		WithRegistry(noRegistry{}),
		WithMacOSVersion("14.4"),
	}
	return NewFinder(append(base, opts...)...)
}

func TestFindHome_JavaHomeTakesPriority(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t,
		"/srv/build-tools/include",
		"/usr/lib/jvm/java-17-openjdk/include",
		"/pf/Java/jdk-17/include",
	)
	testutil.MustMkdirAll(t, fs, testutil.MacBundle("/Library/Java/JavaVirtualMachines/jdk-17.jdk")...)

	registry := RegistryFunc(func() (string, bool) { return "/pf/Java/jdk-17", true })
	for _, p := range platform.All() {
		t.Run(p.String(), func(t *testing.T) {
			t.Parallel()

			f := newTestFinder(fs, map[string]string{
				JavaHomeEnv:    "/srv/build-tools",
				"ProgramFiles": "/pf",
			}, WithRegistry(registry))

			got, err := f.FindHome(p)
			if err != nil {
				t.Fatalf("FindHome(%s) error: %v", p, err)
			}
			if got != "/srv/build-tools" {
				t.Errorf("FindHome(%s) = %q, want JAVA_HOME", p, got)
			}
		})
	}
}

func TestFindHome_LinuxExample(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, testutil.JDK("/usr/lib/jvm/java-11-openjdk", "linux")...)
	f := newTestFinder(fs, nil)

	got, err := f.FindHome(platform.Linux)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}
	if got != "/usr/lib/jvm/java-11-openjdk" {
		t.Errorf("FindHome() = %q, want /usr/lib/jvm/java-11-openjdk", got)
	}
}

func TestFindHome_InvalidJavaHomeFallsBack(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, "/opt/broken", "/usr/java/jdk1.8.0_202/include")
	f := newTestFinder(fs, map[string]string{JavaHomeEnv: "/opt/broken"})

	got, err := f.FindHome(platform.Linux)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}
	if got != "/usr/java/jdk1.8.0_202" {
		t.Errorf("FindHome() = %q, want /usr/java/jdk1.8.0_202", got)
	}
}

func TestFindHome_FailureWithNoCandidates(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, "/usr/lib/jvm", "/usr/java")
	f := newTestFinder(fs, nil)

	_, err := f.FindHome(platform.Linux)
	if !errors.Is(err, ErrNoJDKFound) {
		t.Fatalf("FindHome() error = %v, want ErrNoJDKFound", err)
	}
	var nf *NoJDKFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("FindHome() error = %T, want *NoJDKFoundError", err)
	}
	if !slices.Equal(nf.Visited, []string{""}) {
		t.Errorf("Visited = %q, want only the empty JAVA_HOME probe", nf.Visited)
	}
	if nf.Platform != platform.Linux {
		t.Errorf("Platform = %q, want linux", nf.Platform)
	}
}

func TestFindHome_FailureListsEveryCandidate(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t,
		"/usr/lib/jvm/default-runtime/include",
		"/usr/lib/jvm/java-11-openjdk/lib",
		"/usr/java/latest",
	)
	f := newTestFinder(fs, map[string]string{JavaHomeEnv: "/opt/missing"})

	_, err := f.FindHome(platform.Linux)
	var nf *NoJDKFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("FindHome() error = %v, want *NoJDKFoundError", err)
	}
	want := []string{
		"/opt/missing",
		"/usr/lib/jvm/default-runtime",
		"/usr/lib/jvm/java-11-openjdk",
		"/usr/java/latest",
	}
	if !slices.Equal(nf.VisitedPaths(), want) {
		t.Errorf("Visited = %q, want %q", nf.Visited, want)
	}
}

func TestFindHome_FirstInGlobOrderWins(t *testing.T) {
	t.Parallel()

	// Glob order is lexical. The first fixture lists the older JDK first,
	// the second renames the newer one so it sorts first.
	tests := []struct {
		name string
		dirs []string
		want Home
	}{
		{
			name: "older JDK listed first",
			dirs: []string{"/usr/lib/jvm/java-8-openjdk/include", "/usr/lib/jvm/zulu-21-jdk/include"},
			want: "/usr/lib/jvm/java-8-openjdk",
		},
		{
			name: "newer JDK listed first",
			dirs: []string{"/usr/lib/jvm/zulu-8-jdk/include", "/usr/lib/jvm/java-21-openjdk/include"},
			want: "/usr/lib/jvm/java-21-openjdk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newTestFinder(testutil.NewFixtureFS(t, tt.dirs...), nil)
			got, err := f.FindHome(platform.Linux)
			if err != nil {
				t.Fatalf("FindHome() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FindHome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindHome_WindowsRegistry(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t,
		"/registry/jre/include",
		"/pf/Java/jdk-17/include",
		"/pf/Java/jdk-21/lib",
	)
	env := map[string]string{"ProgramFiles": "/pf"}

	t.Run("registry beats enumeration", func(t *testing.T) {
		t.Parallel()

		registry := RegistryFunc(func() (string, bool) { return "/registry/jre", true })
		f := newTestFinder(fs, env, WithRegistry(registry))
		got, err := f.FindHome(platform.Windows)
		if err != nil {
			t.Fatalf("FindHome() error: %v", err)
		}
		if got != "/registry/jre" {
			t.Errorf("FindHome() = %q, want the registry home", got)
		}
	})

	t.Run("registry miss falls through to enumeration", func(t *testing.T) {
		t.Parallel()

		f := newTestFinder(fs, env)
		got, err := f.FindHome(platform.Windows)
		if err != nil {
			t.Fatalf("FindHome() error: %v", err)
		}
		if want := Home(filepath.Join("/pf", "Java", "jdk-17")); got != want {
			t.Errorf("FindHome() = %q, want %q", got, want)
		}
	})

	t.Run("registry is ignored on cygwin", func(t *testing.T) {
		t.Parallel()

		registry := RegistryFunc(func() (string, bool) { return "/registry/jre", true })
		f := newTestFinder(fs, env, WithRegistry(registry))
		if got, err := f.FindHome(platform.Cygwin); err == nil {
			t.Errorf("FindHome(cygwin) = %q, want failure", got)
		}
	})
}

func TestFindHome_RegistryNeverVisited(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, "/registry/jre/bin", "/pf/Java/jre1.8/bin")
	registry := RegistryFunc(func() (string, bool) { return "/registry/jre", true })
	f := newTestFinder(fs, map[string]string{"ProgramFiles": "/pf"}, WithRegistry(registry))

	_, err := f.FindHome(platform.Windows)
	var nf *NoJDKFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("FindHome() error = %v, want *NoJDKFoundError", err)
	}
	want := []string{"", filepath.Join("/pf", "Java", "jre1.8")}
	if !slices.Equal(nf.Visited, want) {
		t.Errorf("Visited = %q, want %q", nf.Visited, want)
	}
}

func TestFindHome_DarwinBundle(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t)
	testutil.MustMkdirAll(t, fs, testutil.MacBundle("/Library/Java/JavaVirtualMachines/temurin-17.jdk")...)
	f := newTestFinder(fs, nil)

	got, err := f.FindHome(platform.Darwin)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}
	if got != "/Library/Java/JavaVirtualMachines/temurin-17.jdk/Contents/Home" {
		t.Errorf("FindHome() = %q, want the bundle's Contents/Home", got)
	}
}

func TestFindHome_DarwinFailureIncludesLegacyPath(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, "/Library/Java/JavaVirtualMachines/openjdk-11.jdk/Contents")
	f := newTestFinder(fs, nil, WithMacOSVersion("10.8.5"))

	_, err := f.FindHome(platform.Darwin)
	var nf *NoJDKFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("FindHome() error = %v, want *NoJDKFoundError", err)
	}
	want := []string{"", "/Library/Java/JavaVirtualMachines/openjdk-11.jdk", darwinJava6Framework}
	if !slices.Equal(nf.Visited, want) {
		t.Errorf("Visited = %q, want %q", nf.Visited, want)
	}
}

func TestFindHome_TraceObservesEveryProbe(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t, "/usr/lib/jvm/graalvm/include", "/usr/lib/jvm/java-17/include")
	var probes []Probe
	f := newTestFinder(fs, nil, WithTrace(func(p Probe) { probes = append(probes, p) }))

	if _, err := f.FindHome(platform.Linux); err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}

	if len(probes) != 3 {
		t.Fatalf("traced %d probes, want 3: %+v", len(probes), probes)
	}
	if probes[0].Candidate.Source != SourceEnv || probes[0].Accepted {
		t.Errorf("probe[0] = %+v, want rejected JAVA_HOME", probes[0])
	}
	if probes[1].Candidate.Path != "/usr/lib/jvm/graalvm" || probes[1].Accepted {
		t.Errorf("probe[1] = %+v, want rejected graalvm", probes[1])
	}
	if !probes[2].Accepted || probes[2].Home != "/usr/lib/jvm/java-17" {
		t.Errorf("probe[2] = %+v, want accepted java-17", probes[2])
	}
}

func TestFindHome_InvalidPlatform(t *testing.T) {
	t.Parallel()

	f := newTestFinder(testutil.NewFixtureFS(t), nil)
	if _, err := f.FindHome(platform.Platform("beos")); !errors.Is(err, platform.ErrInvalidPlatform) {
		t.Errorf("FindHome(beos) error = %v, want ErrInvalidPlatform", err)
	}
}

func TestFindHome_Sysroot(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("sysroot fixtures use POSIX absolute paths")
	}

	root := t.TempDir()
	testutil.MustMkdirAllOS(t, root, "usr/lib/jvm/java-17-openjdk-amd64/include", "usr/java")
	if err := os.Symlink("java-17-openjdk-amd64", filepath.Join(root, "usr/lib/jvm/default-runtime")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	f := NewFinder(
		WithSysroot(root),
		WithLookupEnv(testutil.LookupEnv(map[string]string{JavaHomeEnv: "/usr/lib/jvm/default-runtime"})),
	)
	got, err := f.FindHome(platform.Linux)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}
	if got != "/usr/lib/jvm/java-17-openjdk-amd64" {
		t.Errorf("FindHome() = %q, want the resolved symlink inside the sysroot", got)
	}
}

func TestSurvey_AgreesWithFindHome(t *testing.T) {
	t.Parallel()

	fs := testutil.NewFixtureFS(t,
		"/registry/jre/bin",
		"/pf/Java/jdk-11/lib",
		"/pf/Java/jdk-17/include",
		"/pf/Java/jdk-21/include",
	)
	registry := RegistryFunc(func() (string, bool) { return "/registry/jre", true })
	f := newTestFinder(fs, map[string]string{"ProgramFiles": "/pf"}, WithRegistry(registry))

	probes, err := f.Survey(platform.Windows)
	if err != nil {
		t.Fatalf("Survey() error: %v", err)
	}

	wantSources := []Source{SourceEnv, SourceRegistry, SourceGlob, SourceGlob, SourceGlob}
	if len(probes) != len(wantSources) {
		t.Fatalf("Survey() returned %d probes, want %d: %+v", len(probes), len(wantSources), probes)
	}
	var accepted []Home
	for i, p := range probes {
		if p.Candidate.Source != wantSources[i] {
			t.Errorf("probe[%d].Source = %q, want %q", i, p.Candidate.Source, wantSources[i])
		}
		if p.Accepted {
			accepted = append(accepted, p.Home)
		}
	}
	if len(accepted) != 2 {
		t.Fatalf("Survey() accepted %q, want jdk-17 and jdk-21", accepted)
	}

	home, err := f.FindHome(platform.Windows)
	if err != nil {
		t.Fatalf("FindHome() error: %v", err)
	}
	if home != accepted[0] {
		t.Errorf("FindHome() = %q, want the first accepted survey entry %q", home, accepted[0])
	}
}
