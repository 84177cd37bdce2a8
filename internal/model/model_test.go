package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSet_Under(t *testing.T) {
	files := FileSet{"/p/a": "1", "/p/sub/b": "2", "/q/c": "3", "/pp/d": "4"}

	got := files.Under("/p/")

	assert.Equal(t, FileSet{"/p/a": "1", "/p/sub/b": "2"}, got)
	assert.Equal(t, []Path{"/p/a", "/p/sub/b", "/pp/d", "/q/c"}, files.Paths())
}

func TestFileSet_CloneIsIndependent(t *testing.T) {
	files := FileSet{"a": "1"}

	clone := files.Clone()
	clone["a"] = "2"

	assert.Equal(t, "1", files["a"])
}

func TestReplaceAllFiles(t *testing.T) {
	mutation := ReplaceAllFiles("load", FileSet{"b": "2", "a": "1"})

	assert.True(t, mutation.ReplaceAll)
	assert.Equal(t, "load", mutation.Reason)
	assert.Equal(t, []FileUpdate{{Name: "a", Content: Content("1")}, {Name: "b", Content: Content("2")}}, mutation.Files)
}

func TestEnvironment(t *testing.T) {
	env := EnvironmentFromPairs([][2]string{{"A", "1"}, {"B", "2"}, {"A", "3"}})

	value, ok := env.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	_, ok = env.Lookup("C")
	assert.False(t, ok)

	assert.Equal(t, [][2]string{{"A", "1"}, {"B", "2"}, {"A", "3"}}, env.Pairs())
	assert.Equal(t, 2, env[2].Position)
}

func TestDiagnostics_Tally(t *testing.T) {
	tests := []struct {
		name   string
		diags  Diagnostics
		want   Tally
		status Status
	}{
		{name: "empty", want: Tally{}, status: StatusOK},
		{name: "warnings", diags: Diagnostics{{Severity: SeverityWarning}}, want: Tally{Warnings: 1}, status: StatusWarnings},
		{
			name:   "untagged counts as error",
			diags:  Diagnostics{{Severity: SeverityWarning}, {Severity: SeverityError}, {}},
			want:   Tally{Errors: 2, Warnings: 1},
			status: StatusErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diags.Tally())
			assert.Equal(t, tt.status, tt.diags.Tally().Status())
		})
	}
}

func TestDiagnostic_Location(t *testing.T) {
	assert.Equal(t, "", Diagnostic{}.Location())
	assert.Equal(t, "a.yaml", Diagnostic{File: "a.yaml"}.Location())
	assert.Equal(t, "a.yaml:3", Diagnostic{File: "a.yaml", Line: 3}.Location())
	assert.Equal(t, "a.yaml:3:7", Diagnostic{File: "a.yaml", Line: 3, Column: 7}.Location())
}

func TestEvents_ProjectRoot(t *testing.T) {
	for _, ev := range []Event{ModifyFile{Root: "/p"}, AddProject{Root: "/p"}, RemoveProject{Root: "/p"}} {
		assert.Equal(t, Path("/p"), ev.ProjectRoot())
	}
}
