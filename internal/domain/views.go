package domain

import (
	"encoding/json"
	"fmt"

	"playground.dev/pkg/playground/internal/adapter"
	m "playground.dev/pkg/playground/internal/model"
)

// VersionLoading is reported while the compiler is still being acquired.
const VersionLoading = "Loading..."

// ProjectSnapshot is the read-only state of one project.
type ProjectSnapshot struct {
	Root  m.Path
	Files m.FileSet
	State CompiledState
}

// Snapshot is an immutable copy of the workspace. Every derived view is a
// method computed from it on demand.
type Snapshot struct {
	Projects        []ProjectSnapshot
	Selection       m.Selection
	Environment     m.Environment
	EnvGeneration   uint64
	CompilerReady   bool
	CompilerVersion string
}

// Registry returns the project roots in registration order.
func (s Snapshot) Registry() []m.Path {
	roots := make([]m.Path, 0, len(s.Projects))
	for _, p := range s.Projects {
		roots = append(roots, p.Root)
	}

	return roots
}

// Project returns the state of root.
func (s Snapshot) Project(root m.Path) (ProjectSnapshot, bool) {
	for _, p := range s.Projects {
		if p.Root == root {
			return p, true
		}
	}

	return ProjectSnapshot{}, false
}

// EffectiveProject returns the selected project, or the first registered
// one when the selection is empty or stale.
func (s Snapshot) EffectiveProject() (ProjectSnapshot, bool) {
	root, ok := EffectiveProject(s.Registry(), s.Selection.Project)
	if !ok {
		return ProjectSnapshot{}, false
	}

	return s.Project(root)
}

// EffectiveArtifact returns the effective project's effective artifact.
func (s Snapshot) EffectiveArtifact() adapter.Artifact {
	if !s.CompilerReady {
		return nil
	}

	project, ok := s.EffectiveProject()
	if !ok {
		return nil
	}

	return project.State.Effective()
}

// Functions lists the effective artifact's functions under the current
// environment.
func (s Snapshot) Functions() []m.Function {
	artifact := s.EffectiveArtifact()
	if artifact == nil {
		return nil
	}

	return artifact.ListFunctions(s.Environment)
}

// EffectiveFunction returns the selected function or the first one.
func (s Snapshot) EffectiveFunction() (m.Function, bool) {
	return EffectiveFunction(s.Functions(), s.Selection.Function)
}

// EffectiveTestCase returns the selected test case of the effective
// function or its first one.
func (s Snapshot) EffectiveTestCase() (m.TestCase, bool) {
	fn, ok := s.EffectiveFunction()
	if !ok {
		return m.TestCase{}, false
	}

	return EffectiveTestCase(fn, s.Selection.TestCase)
}

// Diagnostics returns the effective project's latest diagnostics.
func (s Snapshot) Diagnostics() m.Diagnostics {
	project, ok := s.EffectiveProject()
	if !ok {
		return nil
	}

	return project.State.Diagnostics
}

// Tally counts the effective project's diagnostics.
func (s Snapshot) Tally() m.Tally {
	return s.Diagnostics().Tally()
}

// RequiredEnvVars lists the environment keys the effective artifact needs.
func (s Snapshot) RequiredEnvVars() []string {
	artifact := s.EffectiveArtifact()
	if artifact == nil {
		return nil
	}

	return artifact.RequiredEnvVars()
}

// Version returns the compiler version, or VersionLoading.
func (s Snapshot) Version() string {
	if !s.CompilerReady {
		return VersionLoading
	}

	return s.CompilerVersion
}

// RenderPrompt renders the effective function with the effective test case.
// It reports false when there is nothing to render.
func (s Snapshot) RenderPrompt() (string, bool) {
	fn, ok := s.EffectiveFunction()
	if !ok {
		return "", false
	}

	tc, ok := EffectiveTestCase(fn, s.Selection.TestCase)
	if !ok {
		return "", false
	}

	return s.RenderPromptFor(fn, tc)
}

// RenderPromptFor renders fn with the inputs of tc. Any failure, including
// an input that is not valid JSON, is returned as the rendered text.
func (s Snapshot) RenderPromptFor(fn m.Function, tc m.TestCase) (string, bool) {
	artifact := s.EffectiveArtifact()
	if artifact == nil {
		return "", false
	}

	params := make(map[string]any, len(tc.Inputs))

	for _, input := range tc.Inputs {
		if input.Value == nil {
			continue
		}

		var value any
		if err := json.Unmarshal([]byte(*input.Value), &value); err != nil {
			return fmt.Sprintf("invalid value for %s: %v", input.Name, err), true
		}

		params[input.Name] = value
	}

	text, err := artifact.RenderPrompt(s.Environment, fn.Name, params)
	if err != nil {
		return err.Error(), true
	}

	return text, true
}

// Stale reports whether the effective project was compiled against an
// older environment.
func (s Snapshot) Stale() bool {
	project, ok := s.EffectiveProject()
	if !ok {
		return false
	}

	return project.State.LastOutcome == OutcomeNone || project.State.EnvGeneration != s.EnvGeneration
}
