package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

// SimpleUI implements UI by printing tables to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	color  bool
	styles map[m.Status]lipgloss.Style
}

// SimpleUIOption customizes a SimpleUI.
type SimpleUIOption func(*SimpleUI)

// WithColor enables coloured status badges.
func WithColor(enabled bool) SimpleUIOption {
	return func(s *SimpleUI) {
		s.color = enabled
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...SimpleUIOption) *SimpleUI {
	s := &SimpleUI{
		cmd: cmd,
		styles: map[m.Status]lipgloss.Style{
			m.StatusOK:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")),
			m.StatusWarnings: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EAB308")),
			m.StatusErrors:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DisplayStatus prints the compiler version, the effective selection and
// the diagnostic counter.
func (s *SimpleUI) DisplayStatus(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Compiler: %s\n", snapshot.Version())

	project, ok := snapshot.EffectiveProject()
	if !ok {
		s.printf("No projects\n")
		return nil
	}

	s.printf("Project: %s (%d files)\n", project.Root, len(project.Files))

	if fn, ok := snapshot.EffectiveFunction(); ok {
		s.printf("Function: %s\n", fn.Name)
	}

	if tc, ok := snapshot.EffectiveTestCase(); ok {
		s.printf("Test case: %s\n", tc.Name)
	}

	s.printf("Status: %s\n", s.badge(snapshot.Tally()))

	if project.State.LastOutcome == domain.OutcomeUnexpectedFailure && snapshot.EffectiveArtifact() != nil {
		s.printf("Serving last good build\n")
	}

	return nil
}

// DisplayProjects prints the project registry.
func (s *SimpleUI) DisplayProjects(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	effective, _ := snapshot.EffectiveProject()
	rows := make([][]string, 0, len(snapshot.Projects))

	for _, p := range snapshot.Projects {
		marker := ""
		if p.Root == effective.Root {
			marker = "*"
		}

		rows = append(rows, []string{
			marker,
			string(p.Root),
			fmt.Sprintf("%d", len(p.Files)),
			p.State.LastOutcome.String(),
			s.badge(p.State.Diagnostics.Tally()),
		})
	}

	s.printf("\n%s", renderTable([]string{"", "Root", "Files", "Outcome", "Status"}, rows, nil))

	return nil
}

// DisplayFunctions prints the effective artifact's functions.
func (s *SimpleUI) DisplayFunctions(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !snapshot.CompilerReady {
		s.printf("Functions unavailable: compiler %s\n", snapshot.Version())
		return nil
	}

	functions := snapshot.Functions()
	if len(functions) == 0 {
		s.printf("No functions\n")
		return nil
	}

	selected, _ := snapshot.EffectiveFunction()
	rows := make([][]string, 0, len(functions))

	for _, fn := range functions {
		marker := ""
		if fn.Name == selected.Name {
			marker = "*"
		}

		tests := make([]string, 0, len(fn.TestCases))
		for _, tc := range fn.TestCases {
			tests = append(tests, tc.Name)
		}

		rows = append(rows, []string{marker, fn.Name, strings.Join(fn.Params, ", "), strings.Join(tests, ", ")})
	}

	footer := []string{"", fmt.Sprintf("Total %d", len(functions)), "", ""}
	s.printf("\n%s", renderTable([]string{"", "Function", "Params", "Tests"}, rows, footer))

	return nil
}

// DisplayDiagnostics prints the effective project's diagnostics and tally.
func (s *SimpleUI) DisplayDiagnostics(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diags := snapshot.Diagnostics()
	tally := diags.Tally()

	if len(diags) > 0 {
		rows := make([][]string, 0, len(diags))
		for _, d := range diags {
			rows = append(rows, []string{string(d.Severity), d.Location(), d.Message})
		}

		s.printf("\n%s", renderTable([]string{"Severity", "Location", "Message"}, rows, nil))
	}

	s.printf("%s %d error(s), %d warning(s)\n", s.badge(tally), tally.Errors, tally.Warnings)

	return nil
}

// DisplayEnvironment prints the environment entries by position and the
// required keys that are missing.
func (s *SimpleUI) DisplayEnvironment(ctx context.Context, snapshot domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(snapshot.Environment))
	for _, entry := range snapshot.Environment {
		rows = append(rows, []string{fmt.Sprintf("%d", entry.Position), entry.Key, entry.Value})
	}

	s.printf("\n%s", renderTable([]string{"#", "Key", "Value"}, rows, nil))

	for _, key := range snapshot.RequiredEnvVars() {
		if _, ok := snapshot.Environment.Lookup(key); !ok {
			s.printf("Missing required variable: %s\n", key)
		}
	}

	return nil
}

// DisplayPrompt prints a rendered prompt.
func (s *SimpleUI) DisplayPrompt(ctx context.Context, function, testCase, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("--- %s / %s ---\n%s\n", function, testCase, text)

	return nil
}

// DisplayChange prints a one-line summary of a committed change.
func (s *SimpleUI) DisplayChange(ctx context.Context, change domain.Change, snapshot domain.Snapshot) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch change.Kind {
	case domain.ChangeProject:
		project, ok := snapshot.Project(change.Root)
		if !ok {
			return
		}

		tally := project.State.Diagnostics.Tally()
		s.printf("%s %s %s (%d error(s), %d warning(s))\n",
			s.badge(tally), project.Root, project.State.LastOutcome, tally.Errors, tally.Warnings)
	case domain.ChangeProjectRemoved:
		s.printf("removed %s\n", change.Root)
	case domain.ChangeCompilerReady:
		s.printf("compiler %s\n", snapshot.Version())
	case domain.ChangeEnvironment, domain.ChangeSelection:
	}
}

func (s *SimpleUI) badge(tally m.Tally) string {
	status := tally.Status()
	label := statusLabel(status)

	if !s.color {
		return label
	}

	return s.styles[status].Render(label)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}
