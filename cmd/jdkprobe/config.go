// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"jdkprobe/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `jdkprobe config` command tree.
func newConfigCommand(app *App, flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jdkprobe configuration",
		Long: `Manage jdkprobe configuration.

Configuration is read from the --config file, else from:
  - Linux: $XDG_CONFIG_HOME/jdkprobe/config.cue (~/.config by default)
  - macOS: ~/Library/Application Support/jdkprobe/config.cue
  - Windows: %APPDATA%\jdkprobe\config.cue
and finally ./config.cue. JDKPROBE_* environment variables override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := showConfig(cmd.Context(), app, flags)
			return app.report(err, flags.verbose)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := initConfig(app, flags, force)
			return app.report(err, flags.verbose)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := showConfigPath(app, flags)
			return app.report(err, flags.verbose)
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *globalFlags) error {
	cfg, path, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	flags.verbose = flags.verbose || cfg.UI.Verbose
	fmt.Fprintf(app.stdout, "// source: %s\n", displayConfigPath(path))
	fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	return nil
}

func initConfig(app *App, flags *globalFlags, force bool) error {
	path := flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(config.LoadOptions{}); err != nil {
			return &ExitError{Code: exitFailure, Err: err}
		}
	}
	if err := config.WriteDefault(path, force); err != nil {
		return &ExitError{Code: exitFailure, Err: err}
	}
	fmt.Fprintln(app.stdout, SuccessStyle.Render("Created ")+PathStyle.Render(path))
	return nil
}

func showConfigPath(app *App, flags *globalFlags) error {
	path, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	if path != "" {
		fmt.Fprintln(app.stdout, path)
		return nil
	}

	def, err := config.DefaultConfigPath(config.LoadOptions{})
	if err != nil {
		return &ExitError{Code: exitFailure, Err: err}
	}
	fmt.Fprintf(app.stdout, "%s %s\n", def, SubtitleStyle.Render("(not found, using defaults)"))
	return nil
}
