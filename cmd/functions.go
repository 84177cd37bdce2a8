package cmd

import (
	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
)

// functionsCmd represents the functions command.
var functionsCmd = newFunctionsCmd()

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions [dirs...]",
		Short: "List the functions of the selected project",
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

			snapshot, err := s.snapshot(ctx)
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			if err := ui.DisplayStatus(ctx, snapshot); err != nil {
				return err
			}

			return ui.DisplayFunctions(ctx, snapshot)
		},
	}
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
