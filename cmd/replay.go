package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/domain"
	"playground.dev/pkg/playground/pkg"
)

// replayCmd represents the replay command.
var replayCmd = newReplayCmd()

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay JOURNAL",
		Short: "Apply the messages recorded by serve --journal and report the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx, adapter.NopRecorder{})
			if err != nil {
				return err
			}
			defer s.Close()

			ingestor := domain.NewIngestor(s.workspace)
			applied := 0

			err = pkg.ReadJournal(args[0], func(index uint64, msg adapter.Message) error {
				ev, err := msg.Event()
				if err != nil {
					slog.Warn("skipping journal entry", "index", index, "command", msg.Command, "error", err)
					return nil
				}

				if err := ingestor.Handle(ctx, ev); err != nil {
					return fmt.Errorf("replay entry %d: %w", index, err)
				}

				applied++

				return nil
			})
			if err != nil {
				return err
			}

			cmd.Printf("Replayed %d message(s)\n", applied)

			snapshot, err := s.snapshot(ctx)
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			if err := ui.DisplayProjects(ctx, snapshot); err != nil {
				return err
			}

			if err := ui.DisplayStatus(ctx, snapshot); err != nil {
				return err
			}

			return ui.DisplayDiagnostics(ctx, snapshot)
		},
	}
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
