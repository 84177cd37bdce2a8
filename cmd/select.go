package cmd

import (
	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
)

var selectProjectFlag string
var selectFunctionFlag string
var selectTestFlag string

// selectCmd represents the select command.
var selectCmd = newSelectCmd()

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Store the selected project, function and test case",
		Long: `Store the selection in the session. Unset flags keep their stored value.
A stored name that no longer exists falls back to the first available one
when read; the stored value itself is never rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			if selectProjectFlag != "" {
				root, err := resolveRoot(ctx, selectProjectFlag)
				if err != nil {
					return err
				}

				if err := s.workspace.SelectProject(ctx, root); err != nil {
					return err
				}
			}

			if err := s.workspace.SelectFunction(ctx, selectFunctionFlag); err != nil {
				return err
			}

			if err := s.workspace.SelectTestCase(ctx, selectTestFlag); err != nil {
				return err
			}

			selection := s.workspace.Snapshot().Selection
			cmd.Printf("project\t%s\nfunction\t%s\ntest case\t%s\n", selection.Project, selection.Function, selection.TestCase)

			return nil
		},
	}

	cmd.Flags().StringVarP(&selectProjectFlag, "project", "p", "", "project directory")
	cmd.Flags().StringVarP(&selectFunctionFlag, "function", "f", "", "function name")
	cmd.Flags().StringVarP(&selectTestFlag, "test", "t", "", "test case name")

	return cmd
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
