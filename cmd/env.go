package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
)

// envCmd represents the env command group.
var envCmd = newEnvCmd()

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the session environment",
		Long: `Environment entries are an ordered list of key/value pairs addressed by
position. Keys may repeat; when a map is needed the later entry wins.
Changing the environment does not compile anything by itself: the selected
project is recompiled the next time its functions or prompts are read.`,
	}

	cmd.AddCommand(newEnvListCmd(), newEnvSetCmd(), newEnvKeyCmd(), newEnvRmCmd(), newEnvResetCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func newEnvListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dirs...]",
		Short: "List environment entries and missing required variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) > 0 || s.workspace.Snapshot().Selection.Project != "" {
				if _, err := s.loadProjects(ctx, args); err != nil {
					return err
				}
			}

			snapshot, err := s.snapshot(ctx)
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayEnvironment(ctx, snapshot)
		},
	}
}

var envSetAtFlag int

func newEnvSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set KEY VALUE | set --at N VALUE",
		Short: "Append an entry, or replace the value at a position",
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("at") {
				return cobra.ExactArgs(1)(cmd, args)
			}

			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			if cmd.Flags().Changed("at") {
				return s.workspace.SetEnvValue(ctx, envSetAtFlag, args[0])
			}

			return s.workspace.AppendEnv(ctx, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&envSetAtFlag, "at", 0, "position of the entry whose value is replaced")

	return cmd
}

func newEnvKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key POSITION KEY",
		Short: "Rename the key at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			return s.workspace.SetEnvKey(ctx, position, args[1])
		},
	}
}

func newEnvRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm POSITION",
		Short: "Remove the entry at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			return s.workspace.RemoveEnv(ctx, position)
		},
	}
}

func newEnvResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every environment entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			return s.workspace.ResetEnv(ctx)
		},
	}
}

func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", arg, err)
	}

	return position, nil
}
