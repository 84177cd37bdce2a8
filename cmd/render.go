package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

// ErrNothingToRender is returned when no function or test case is available.
var ErrNothingToRender = errors.New("nothing to render")

var renderFunctionFlag string
var renderTestFlag string
var renderAllFlag bool

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [dirs...]",
		Short: "Render the prompt of a function for a test case",
		Long: `Render the prompt of the selected function with the inputs of the selected
test case. --function and --test override the stored selection for this call
only; --all renders every test case of the function.`,
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

			return renderPrompts(cmd, snapshot, renderFunctionFlag, renderTestFlag, renderAllFlag)
		},
	}

	cmd.Flags().StringVarP(&renderFunctionFlag, "function", "f", "", "function to render instead of the selected one")
	cmd.Flags().StringVarP(&renderTestFlag, "test", "t", "", "test case to render instead of the selected one")
	cmd.Flags().BoolVarP(&renderAllFlag, "all", "a", false, "render every test case of the function")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func renderPrompts(cmd *cobra.Command, snapshot domain.Snapshot, function, testCase string, all bool) error {
	ctx := cmd.Context()

	if !snapshot.CompilerReady {
		return fmt.Errorf("%w: compiler %s", ErrNothingToRender, snapshot.Version())
	}

	if function == "" {
		function = snapshot.Selection.Function
	}

	if testCase == "" {
		testCase = snapshot.Selection.TestCase
	}

	fn, ok := domain.EffectiveFunction(snapshot.Functions(), function)
	if !ok {
		return fmt.Errorf("%w: no functions", ErrNothingToRender)
	}

	cases := fn.TestCases
	if !all {
		tc, ok := domain.EffectiveTestCase(fn, testCase)
		if !ok {
			return fmt.Errorf("%w: %s has no test cases", ErrNothingToRender, fn.Name)
		}

		cases = []m.TestCase{tc}
	}

	ui := newUI(cmd)

	for _, tc := range cases {
		text, ok := snapshot.RenderPromptFor(fn, tc)
		if !ok {
			continue
		}

		if err := ui.DisplayPrompt(ctx, fn.Name, tc.Name, text); err != nil {
			return err
		}
	}

	return nil
}
