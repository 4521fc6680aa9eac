// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for jdkprobe.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand creates the command tree bound to app.
func newRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "jdkprobe",
		Short: "Locate a JDK and derive the native build configuration for JNI code",
		Long: TitleStyle.Render("jdkprobe") + SubtitleStyle.Render(" - locate a JDK for building JNI extensions") + `

Without a subcommand, jdkprobe prints the library directory of the first
usable JDK it finds. It looks at JAVA_HOME first, then the Windows
registry, then the platform's usual install locations, and finally any
search_paths from the config file.

` + SubtitleStyle.Render("Examples:") + `
  jdkprobe                     Print the JDK library directory
  jdkprobe show --format json  Print the full build configuration
  jdkprobe show --format flags Print compiler and linker flags
  jdkprobe candidates          List every location and its verdict
  jdkprobe config init         Write a default config file`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPrimaryLibDir(cmd.Context(), app, flags)
			return app.report(err, flags.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is <user config dir>/jdkprobe/config.cue)")
	rootCmd.PersistentFlags().StringVar(&flags.platform, "platform", "", "platform layout to search: auto, windows, darwin, linux, cygwin")
	rootCmd.PersistentFlags().StringVar(&flags.sysroot, "sysroot", "", "resolve every probed path under this directory")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every probe and show extended help on failure")

	rootCmd.AddCommand(newShowCommand(app, flags))
	rootCmd.AddCommand(newCandidatesCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// runPrimaryLibDir prints the JDK's own library directory.
func runPrimaryLibDir(ctx context.Context, app *App, flags *globalFlags) error {
	s, err := newSession(ctx, app, flags)
	if err != nil {
		return err
	}
	cfg, err := s.build()
	if err != nil {
		return err
	}
	dir, _ := cfg.PrimaryLibraryDir()
	fmt.Fprintln(app.stdout, dir)
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithErrorHandler(handleError),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
