// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"jdkprobe/internal/buildcfg"
	"jdkprobe/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newShowCommand(app *App, flags *globalFlags) *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the full native build configuration",
		Long: `Print the build configuration derived from the discovered JDK: include
and library directories, link libraries, defines, extra compiler arguments
and native sources.

The default format comes from output.format in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd, app, flags, format)
			return app.report(err, flags.verbose)
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", "", "output format: path, json, yaml, toml, flags")
	return showCmd
}

func runShow(cmd *cobra.Command, app *App, flags *globalFlags, format string) error {
	s, err := newSession(cmd.Context(), app, flags)
	if err != nil {
		return err
	}

	f := s.cfg.Output.Format
	if format != "" {
		f = config.OutputFormat(format)
	}
	if valid, errs := f.IsValid(); !valid {
		return &ExitError{Code: exitUsage, Err: errs[0]}
	}

	cfg, err := s.build()
	if err != nil {
		return err
	}
	return writeConfiguration(app.stdout, cfg, f)
}

// writeConfiguration encodes cfg in format f.
func writeConfiguration(w io.Writer, cfg *buildcfg.Configuration, f config.OutputFormat) error {
	switch f {
	case config.FormatPath:
		dir, _ := cfg.PrimaryLibraryDir()
		_, err := fmt.Fprintln(w, dir)
		return err
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case config.FormatFlags:
		_, err := fmt.Fprintln(w, cfg.Flags().String())
		return err
	default:
		return &config.InvalidFormatError{Value: f}
	}
}
