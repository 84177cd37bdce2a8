// Package adapter contains the infrastructure boundaries of the playground:
// the schema compiler, the session store, event transports and metrics.
package adapter

import (
	"context"
	"fmt"

	m "playground.dev/pkg/playground/internal/model"
)

// Compiler builds projects from a root and a file set. Implementations are
// stateless between calls.
type Compiler interface {
	// Build prepares a project from files under root.
	Build(ctx context.Context, root m.Path, files m.FileSet) (CompilerProject, error)

	// Version returns the compiler's version string.
	Version() string
}

// CompilerProject is a built project that can be compiled against an
// environment.
type CompilerProject interface {
	// Compile returns the runtime artifact and its diagnostics. A
	// *DiagnosticError reports that no artifact could be produced; any
	// other error is unexpected.
	Compile(ctx context.Context, env m.Environment) (Artifact, m.Diagnostics, error)
}

// Artifact is a compiled, runnable project.
type Artifact interface {
	// ListFunctions returns the callable functions under env.
	ListFunctions(env m.Environment) []m.Function

	// RenderPrompt renders the prompt of function with the given params.
	RenderPrompt(env m.Environment, function string, params map[string]any) (string, error)

	// RequiredEnvVars lists environment keys the artifact needs.
	RequiredEnvVars() []string
}

// CompilerLoader acquires the compiler. It runs once per workspace.
type CompilerLoader func(ctx context.Context) (Compiler, error)

// DiagnosticError is the compiler's distinguished failure: the project
// could not be compiled and Diagnostics explains why.
type DiagnosticError struct {
	Diagnostics m.Diagnostics
}

// Error implements error.
func (e *DiagnosticError) Error() string {
	tally := e.Diagnostics.Tally()
	if len(e.Diagnostics) == 0 {
		return "compilation failed"
	}

	return fmt.Sprintf("compilation failed with %d error(s), %d warning(s): %s",
		tally.Errors, tally.Warnings, e.Diagnostics[0].Message)
}
