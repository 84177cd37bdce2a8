package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/domain"
)

// ErrCheckFailed is returned when at least one project has errors.
var ErrCheckFailed = errors.New("check failed")

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dirs...]",
		Short: "Compile projects and report diagnostics",
		Long: `Load each directory as a project, compile it against the session environment
and print its diagnostics. Exits with an error when any project has errors
or could not be compiled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := s.loadProjects(ctx, args); err != nil {
				return err
			}

			snapshot := s.workspace.Snapshot()
			ui := newUI(cmd)

			if err := ui.DisplayProjects(ctx, snapshot); err != nil {
				return err
			}

			failed := 0

			for _, project := range snapshot.Projects {
				if project.State.LastOutcome != domain.OutcomeCompiled || project.State.Diagnostics.Tally().Errors > 0 {
					failed++
				}

				if project.State.LastOutcome == domain.OutcomeUnexpectedFailure {
					cmd.Printf("%s: %s\n", project.Root, project.State.LastMessage)
				}
			}

			if err := ui.DisplayDiagnostics(ctx, snapshot); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d project(s)", ErrCheckFailed, failed, len(snapshot.Projects))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
