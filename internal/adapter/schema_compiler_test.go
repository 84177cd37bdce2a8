package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "playground.dev/pkg/playground/internal/model"
)

const greetSchema = `required_env: [TEAM]
functions:
  - name: Greet
    params: [name]
    prompt: 'Hello {{.name}} from {{env "TEAM"}}'
    tests:
      - name: bob
        args:
          name: '"Bob"'
`

const sumSchema = `[[functions]]
name = "Sum"
params = ["a", "b"]
prompt = "{{.a}} + {{.b}}"

[[functions.tests]]
name = "one"

[functions.tests.args]
b = "2"
a = "1"
`

func compileSchema(t *testing.T, files m.FileSet, env m.Environment) (Artifact, m.Diagnostics, error) {
	t.Helper()

	compiler := NewLocalSchemaCompiler()

	project, err := compiler.Build(context.Background(), "/p", files)
	require.NoError(t, err)

	return project.Compile(context.Background(), env)
}

func TestLocalSchemaCompiler_CompileYAML(t *testing.T) {
	// Arrange
	env := m.EnvironmentFromPairs([][2]string{{"TEAM", "core"}})

	// Act
	artifact, diags, err := compileSchema(t, m.FileSet{"/p/main.yaml": greetSchema}, env)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, []string{"TEAM"}, artifact.RequiredEnvVars())

	functions := artifact.ListFunctions(env)
	require.Len(t, functions, 1)
	assert.Equal(t, "Greet", functions[0].Name)
	assert.Equal(t, []string{"name"}, functions[0].Params)
	require.Len(t, functions[0].TestCases, 1)
	assert.Equal(t, "bob", functions[0].TestCases[0].Name)
	assert.Equal(t, "name", functions[0].TestCases[0].Inputs[0].Name)
	assert.Equal(t, `"Bob"`, *functions[0].TestCases[0].Inputs[0].Value)

	text, err := artifact.RenderPrompt(env, "Greet", map[string]any{"name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Bob from core", text)
}

func TestLocalSchemaCompiler_CompileTOML(t *testing.T) {
	artifact, diags, err := compileSchema(t, m.FileSet{"/p/sum.toml": sumSchema}, nil)

	require.NoError(t, err)
	assert.Empty(t, diags)

	functions := artifact.ListFunctions(nil)
	require.Len(t, functions, 1)

	inputs := functions[0].TestCases[0].Inputs
	require.Len(t, inputs, 2)
	assert.Equal(t, "a", inputs[0].Name)
	assert.Equal(t, "b", inputs[1].Name)

	text, err := artifact.RenderPrompt(nil, "Sum", map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", text)
}

func TestLocalSchemaCompiler_Diagnostics(t *testing.T) {
	tests := []struct {
		name         string
		files        m.FileSet
		wantFailure  bool
		wantMessages []string
		wantLine     int
	}{
		{
			name:         "missing required env",
			files:        m.FileSet{"/p/main.yaml": greetSchema},
			wantMessages: []string{"required environment variable TEAM is not set"},
		},
		{
			name:         "syntax error",
			files:        m.FileSet{"/p/main.yaml": "functions:\n\t- name: x\n"},
			wantFailure:  true,
			wantMessages: []string{"found character that cannot start any token"},
			wantLine:     2,
		},
		{
			name: "broken prompt template",
			files: m.FileSet{"/p/main.yaml": `functions:
  - name: Bad
    prompt: '{{.name'
`},
			wantFailure:  true,
			wantMessages: []string{"prompt of Bad"},
		},
		{
			name: "duplicate function and missing name",
			files: m.FileSet{"/p/main.yaml": `functions:
  - name: Greet
    tests: [{name: t}]
  - name: Greet
  - prompt: anonymous
`},
			wantMessages: []string{"function Greet is declared more than once", "function #3 has no name"},
		},
		{
			name: "tests referencing unknown params",
			files: m.FileSet{"/p/main.yaml": `functions:
  - name: Greet
    params: [name]
    tests:
      - name: t
        args: {nme: '"x"'}
  - name: Lonely
`},
			wantMessages: []string{"test t of Greet sets unknown param nme", "function Lonely has no test cases"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, diags, err := compileSchema(t, tt.files, nil)

			if tt.wantFailure {
				var diagErr *DiagnosticError
				require.True(t, errors.As(err, &diagErr))
				assert.Nil(t, artifact)
				diags = diagErr.Diagnostics
			} else {
				require.NoError(t, err)
				assert.NotNil(t, artifact)
			}

			messages := make([]string, 0, len(diags))
			for _, diag := range diags {
				messages = append(messages, diag.Message)
			}

			for _, want := range tt.wantMessages {
				found := false

				for _, got := range messages {
					if strings.Contains(got, want) {
						found = true
					}
				}

				assert.Truef(t, found, "missing diagnostic %q in %v", want, messages)
			}

			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, diags[0].Line)
				assert.Equal(t, m.Path("/p/main.yaml"), diags[0].File)
			}
		})
	}
}

func TestLocalSchemaCompiler_IgnoresForeignFiles(t *testing.T) {
	files := m.FileSet{
		"/p/main.yaml":   greetSchema,
		"/p/notes.md":    "{{ not a schema",
		"/other/x.yaml":  "\tbroken",
		"/p/nested.toml": sumSchema,
	}

	artifact, _, err := compileSchema(t, files, nil)

	require.NoError(t, err)
	assert.Len(t, artifact.ListFunctions(nil), 2)
}

func TestSchemaArtifact_RenderPromptErrors(t *testing.T) {
	artifact, _, err := compileSchema(t, m.FileSet{"/p/main.yaml": greetSchema}, nil)
	require.NoError(t, err)

	t.Run("unknown function", func(t *testing.T) {
		_, err := artifact.RenderPrompt(nil, "Nope", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "function Nope not found")
	})

	t.Run("missing param", func(t *testing.T) {
		_, err := artifact.RenderPrompt(m.EnvironmentFromPairs([][2]string{{"TEAM", "x"}}), "Greet", nil)
		require.Error(t, err)
	})

	t.Run("missing env", func(t *testing.T) {
		_, err := artifact.RenderPrompt(nil, "Greet", map[string]any{"name": "Bob"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment variable TEAM is not set")
	})
}

func TestLoadLocalSchemaCompiler(t *testing.T) {
	compiler, err := LoadLocalSchemaCompiler(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SchemaCompilerVersion, compiler.Version())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = LoadLocalSchemaCompiler(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = compiler.Build(ctx, "/p", nil)
	require.ErrorIs(t, err, context.Canceled)
}
