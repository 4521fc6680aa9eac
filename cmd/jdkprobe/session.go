// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"

	"jdkprobe/internal/buildcfg"
	"jdkprobe/internal/config"
	"jdkprobe/internal/issue"
	"jdkprobe/internal/jdkhome"
	"jdkprobe/pkg/platform"

	"github.com/charmbracelet/log"
)

// notSetLabel stands in for an empty JAVA_HOME in user-facing output.
const notSetLabel = "$JAVA_HOME (not set)"

// session is the per-invocation state shared by the discovery commands:
// the loaded config with flag overrides applied, and the target platform.
type session struct {
	app        *App
	cfg        *config.Config
	configPath string
	platform   platform.Platform
	verbose    bool
	logger     *log.Logger
}

// newSession loads configuration and applies the global flags over it.
// Flags win over the config file and JDKPROBE_* variables. A ui.verbose
// setting is folded into flags.verbose so failure reports honor it too.
func newSession(ctx context.Context, app *App, flags *globalFlags) (*session, error) {
	cfg, path, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: err}
	}

	if flags.platform != "" {
		cfg.Platform = config.PlatformChoice(flags.platform)
	}
	if flags.sysroot != "" {
		cfg.Sysroot = flags.sysroot
	}

	flags.verbose = flags.verbose || cfg.UI.Verbose
	verbose := flags.verbose

	p, err := cfg.Platform.Resolve()
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: issue.NewErrorContext().
			WithOperation("select platform").
			WithResource(cfg.Platform.String()).
			WithSuggestion("Use one of: windows, darwin, linux, cygwin, or auto").
			WithIssue(issue.UnsupportedPlatformId).
			Wrap(err).
			Build()}
	}

	s := &session{
		app:        app,
		cfg:        cfg,
		configPath: path,
		platform:   p,
		verbose:    verbose,
		logger:     app.newLogger(verbose),
	}
	s.logger.Debug("configuration loaded", "file", displayConfigPath(path), "platform", p, "sysroot", cfg.Sysroot)
	return s, nil
}

// finder builds a Finder for the session. Each probe is logged at debug
// level.
func (s *session) finder() *jdkhome.Finder {
	opts := []jdkhome.Option{
		jdkhome.WithLookupEnv(s.app.LookupEnv),
		jdkhome.WithSearchPaths(s.cfg.SearchPaths...),
		jdkhome.WithTrace(func(p jdkhome.Probe) {
			s.logger.Debug("probe",
				"path", displayCandidate(p.Candidate.Path),
				"source", p.Candidate.Source,
				"trust", p.Candidate.Trust,
				"accepted", p.Accepted,
			)
		}),
	}
	if s.cfg.Sysroot != "" {
		opts = append(opts, jdkhome.WithSysroot(s.cfg.Sysroot))
	}
	return jdkhome.NewFinder(opts...)
}

// findHome runs discovery and converts a failure into the user diagnostic.
func (s *session) findHome() (jdkhome.Home, error) {
	home, err := s.finder().FindHome(s.platform)
	if err == nil {
		s.logger.Debug("JDK found", "home", home)
		return home, nil
	}

	var nf *jdkhome.NoJDKFoundError
	if !errors.As(err, &nf) {
		return "", &ExitError{Code: exitFailure, Err: err}
	}

	visited := nf.VisitedPaths()
	for i, path := range visited {
		visited[i] = displayCandidate(path)
	}
	return "", &ExitError{Code: exitFailure, Err: issue.NewErrorContext().
		WithOperation("find a JDK").
		WithDetails("Searched", visited...).
		WithSuggestion("Set " + jdkhome.JavaHomeEnv + " to the JDK installation directory and try again").
		WithIssue(issue.NoJDKFoundId).
		Wrap(err).
		Build()}
}

// build discovers the JDK and derives the build configuration from it.
func (s *session) build() (*buildcfg.Configuration, error) {
	home, err := s.findHome()
	if err != nil {
		return nil, err
	}

	builder, err := buildcfg.NewBuilder(nil, s.cfg.Native.Layout())
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: err}
	}
	cfg, err := builder.Build(s.platform, home)
	if err != nil {
		var scanErr *buildcfg.SourceScanError
		if errors.As(err, &scanErr) {
			err = issue.NewErrorContext().
				WithOperation("scan native sources").
				WithResource(scanErr.Dir).
				WithIssue(issue.SourceScanFailedId).
				Wrap(scanErr.Err).
				Build()
		}
		return nil, &ExitError{Code: exitFailure, Err: err}
	}
	return cfg, nil
}

func displayCandidate(path string) string {
	if path == "" {
		return notSetLabel
	}
	return path
}

func displayConfigPath(path string) string {
	if path == "" {
		return "(defaults)"
	}
	return path
}
