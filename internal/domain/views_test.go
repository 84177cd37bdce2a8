package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "playground.dev/pkg/playground/internal/adapter/mocks"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

var greetFunctions = []m.Function{
	{
		Name:   "Greet",
		Params: []string{"name"},
		TestCases: []m.TestCase{
			{Name: "bob", Inputs: []m.TestInput{{Name: "name", Value: m.Content(`"Bob"`)}}},
			{Name: "broken", Inputs: []m.TestInput{{Name: "name", Value: m.Content(`{not json`)}}},
			{Name: "unset", Inputs: []m.TestInput{{Name: "name"}}},
		},
	},
	{Name: "Farewell"},
}

func snapshotWith(artifact *adaptermocks.MockArtifact, selection m.Selection) domain.Snapshot {
	state := domain.CompiledState{}.Apply(domain.Compiled(artifact, nil), 1)

	return domain.Snapshot{
		Projects: []domain.ProjectSnapshot{
			{Root: "/p", Files: m.FileSet{"/p/a.yaml": "x"}, State: state},
			{Root: "/q", State: domain.CompiledState{}.Apply(domain.DiagnosedFailure(syntaxError), 1)},
		},
		Selection:       selection,
		Environment:     m.EnvironmentFromPairs([][2]string{{"A", "1"}}),
		EnvGeneration:   1,
		CompilerReady:   true,
		CompilerVersion: "test 1.0",
	}
}

func TestSnapshot_Functions(t *testing.T) {
	// Arrange
	artifact := adaptermocks.NewMockArtifact(t)
	artifact.EXPECT().ListFunctions(mock.Anything).Return(greetFunctions)
	snapshot := snapshotWith(artifact, m.Selection{Function: "Farewell"})

	// Act
	functions := snapshot.Functions()
	fn, ok := snapshot.EffectiveFunction()

	// Assert
	assert.Equal(t, greetFunctions, functions)
	require.True(t, ok)
	assert.Equal(t, "Farewell", fn.Name)
	assert.Equal(t, []m.Path{"/p", "/q"}, snapshot.Registry())
	assert.Equal(t, "test 1.0", snapshot.Version())
	assert.False(t, snapshot.Stale())
}

func TestSnapshot_RenderPrompt(t *testing.T) {
	artifact := adaptermocks.NewMockArtifact(t)
	artifact.EXPECT().ListFunctions(mock.Anything).Return(greetFunctions).Maybe()
	artifact.EXPECT().RenderPrompt(mock.Anything, "Greet", map[string]any{"name": "Bob"}).Return("Hello Bob", nil).Maybe()
	artifact.EXPECT().RenderPrompt(mock.Anything, "Greet", map[string]any{}).Return("", errors.New("missing name")).Maybe()

	t.Run("selected test case", func(t *testing.T) {
		text, ok := snapshotWith(artifact, m.Selection{}).RenderPrompt()

		assert.True(t, ok)
		assert.Equal(t, "Hello Bob", text)
	})

	t.Run("invalid JSON input is rendered as text", func(t *testing.T) {
		text, ok := snapshotWith(artifact, m.Selection{TestCase: "broken"}).RenderPrompt()

		assert.True(t, ok)
		assert.Contains(t, text, "invalid value for name")
	})

	t.Run("render error is rendered as text", func(t *testing.T) {
		text, ok := snapshotWith(artifact, m.Selection{TestCase: "unset"}).RenderPrompt()

		assert.True(t, ok)
		assert.Equal(t, "missing name", text)
	})

	t.Run("function without test cases renders nothing", func(t *testing.T) {
		_, ok := snapshotWith(artifact, m.Selection{Function: "Farewell"}).RenderPrompt()

		assert.False(t, ok)
	})
}

func TestSnapshot_DiagnosticsFollowEffectiveProject(t *testing.T) {
	artifact := adaptermocks.NewMockArtifact(t)

	assert.Equal(t, m.Tally{}, snapshotWith(artifact, m.Selection{}).Tally())

	failing := snapshotWith(artifact, m.Selection{Project: "/q"})
	assert.Equal(t, m.Tally{Errors: 1, Warnings: 0}, failing.Tally())
	assert.Equal(t, m.StatusErrors, failing.Tally().Status())
	assert.Nil(t, failing.EffectiveArtifact())
	assert.Empty(t, failing.Functions())
}

func TestSnapshot_CompilerNotReady(t *testing.T) {
	artifact := adaptermocks.NewMockArtifact(t)
	snapshot := snapshotWith(artifact, m.Selection{})
	snapshot.CompilerReady = false

	_, rendered := snapshot.RenderPrompt()

	assert.Equal(t, domain.VersionLoading, snapshot.Version())
	assert.Nil(t, snapshot.EffectiveArtifact())
	assert.Empty(t, snapshot.Functions())
	assert.Empty(t, snapshot.RequiredEnvVars())
	assert.False(t, rendered)
}

func TestSnapshot_StaleAfterEnvironmentChange(t *testing.T) {
	artifact := adaptermocks.NewMockArtifact(t)
	snapshot := snapshotWith(artifact, m.Selection{})

	snapshot.EnvGeneration = 2

	assert.True(t, snapshot.Stale())
}

func TestSnapshot_NoProjects(t *testing.T) {
	snapshot := domain.Snapshot{CompilerReady: true}

	_, ok := snapshot.EffectiveProject()

	assert.False(t, ok)
	assert.Nil(t, snapshot.EffectiveArtifact())
	assert.Nil(t, snapshot.Diagnostics())
	assert.Equal(t, m.StatusOK, snapshot.Tally().Status())
	assert.False(t, snapshot.Stale())
}
