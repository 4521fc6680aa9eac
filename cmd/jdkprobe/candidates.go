// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"jdkprobe/internal/jdkhome"

	"github.com/spf13/cobra"
)

func newCandidatesCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List every JDK candidate location and whether it qualifies",
		Long: `List every location the discovery chain considers, in the order it tries
them, with the verdict for each. The entry marked "selected" is the one
jdkprobe uses. Unlike plain discovery, every candidate is checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCandidates(cmd, app, flags)
			return app.report(err, flags.verbose)
		},
	}
}

func runCandidates(cmd *cobra.Command, app *App, flags *globalFlags) error {
	s, err := newSession(cmd.Context(), app, flags)
	if err != nil {
		return err
	}

	probes, err := s.finder().Survey(s.platform)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("JDK candidates for "+s.platform.String()))
	selected := false
	for _, p := range probes {
		writeProbe(app.stdout, p, p.Accepted && !selected)
		selected = selected || p.Accepted
	}
	if !selected {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("no candidate qualifies"))
		return &ExitError{Code: exitFailure}
	}
	return nil
}

// writeProbe prints one probe as
//
//	✓ <path> [<source>, <trust>] -> <home> (selected)
func writeProbe(w io.Writer, p jdkhome.Probe, selected bool) {
	mark := ErrorStyle.Render("✗")
	if p.Accepted {
		mark = SuccessStyle.Render("✓")
	}
	line := fmt.Sprintf("%s %s [%s, %s]", mark, PathStyle.Render(displayCandidate(p.Candidate.Path)), p.Candidate.Source, p.Candidate.Trust)
	if p.Accepted && string(p.Home) != p.Candidate.Path {
		line += " -> " + PathStyle.Render(p.Home.String())
	}
	if selected {
		line += " " + SuccessStyle.Render("(selected)")
	}
	fmt.Fprintln(w, line)
}
