package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"playground.dev/pkg/playground/internal/adapter"
	m "playground.dev/pkg/playground/internal/model"
)

// OutcomeKind classifies a compilation attempt.
type OutcomeKind int

// Available OutcomeKind values.
const (
	// OutcomeNone means no compilation has been attempted yet.
	OutcomeNone OutcomeKind = iota
	// OutcomeCompiled means the compiler produced an artifact, possibly
	// with error diagnostics.
	OutcomeCompiled
	// OutcomeDiagnosedFailure means the compiler reported that no artifact
	// could be produced.
	OutcomeDiagnosedFailure
	// OutcomeUnexpectedFailure covers every other failure.
	OutcomeUnexpectedFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeCompiled:
		return "compiled"
	case OutcomeDiagnosedFailure:
		return "diagnosed_failure"
	case OutcomeUnexpectedFailure:
		return "unexpected_failure"
	}

	return "unknown"
}

// Outcome is the result of one compilation attempt. Only the fields of its
// Kind are set: Artifact and Diagnostics for Compiled, Diagnostics for
// DiagnosedFailure, Message for UnexpectedFailure.
type Outcome struct {
	Kind        OutcomeKind
	Artifact    adapter.Artifact
	Diagnostics m.Diagnostics
	Message     string
}

// Compiled builds a Compiled outcome.
func Compiled(artifact adapter.Artifact, diags m.Diagnostics) Outcome {
	return Outcome{Kind: OutcomeCompiled, Artifact: artifact, Diagnostics: diags}
}

// DiagnosedFailure builds a DiagnosedFailure outcome.
func DiagnosedFailure(diags m.Diagnostics) Outcome {
	return Outcome{Kind: OutcomeDiagnosedFailure, Diagnostics: diags}
}

// UnexpectedFailure builds an UnexpectedFailure outcome.
func UnexpectedFailure(message string) Outcome {
	return Outcome{Kind: OutcomeUnexpectedFailure, Message: message}
}

// Recompile runs the compiler for one project and classifies the result.
// It never returns an error and never panics: every failure is folded into
// the outcome. Only files under root reach the compiler.
func Recompile(ctx context.Context, compiler adapter.Compiler, root m.Path, files m.FileSet, env m.Environment) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = UnexpectedFailure(fmt.Sprintf("compiler panic: %v", r))
		}
	}()

	project, err := compiler.Build(ctx, root, files.Under(root))
	if err != nil {
		return classifyError(err)
	}

	artifact, diags, err := project.Compile(ctx, env)
	if err != nil {
		return classifyError(err)
	}

	if artifact == nil {
		return UnexpectedFailure("compiler returned no artifact")
	}

	return Compiled(artifact, diags)
}

func classifyError(err error) Outcome {
	var diagErr *adapter.DiagnosticError
	if errors.As(err, &diagErr) {
		return DiagnosedFailure(diagErr.Diagnostics)
	}

	return UnexpectedFailure(err.Error())
}

// CompiledState is the per-project compilation cache.
type CompiledState struct {
	// Current is the artifact of the latest attempt, nil if it failed.
	Current adapter.Artifact
	// LastGood is the latest artifact from an attempt that produced one.
	LastGood adapter.Artifact
	// Diagnostics of the latest attempt that reported any.
	Diagnostics m.Diagnostics
	// LastOutcome and LastMessage describe the latest attempt.
	LastOutcome OutcomeKind
	LastMessage string
	// EnvGeneration is the environment generation of the latest attempt.
	EnvGeneration uint64
}

// Apply folds an outcome into the state and returns the new state.
//
// An unexpected failure empties Current but keeps LastGood and the
// previous Diagnostics.
func (s CompiledState) Apply(outcome Outcome, envGeneration uint64) CompiledState {
	next := s
	next.LastOutcome = outcome.Kind
	next.LastMessage = outcome.Message
	next.EnvGeneration = envGeneration

	switch outcome.Kind {
	case OutcomeCompiled:
		next.Current = outcome.Artifact
		next.LastGood = outcome.Artifact
		next.Diagnostics = outcome.Diagnostics
	case OutcomeDiagnosedFailure:
		next.Current = nil
		next.Diagnostics = outcome.Diagnostics
	case OutcomeUnexpectedFailure:
		next.Current = nil
	case OutcomeNone:
	}

	return next
}

// Effective returns the artifact consumers should use: Current if set,
// else LastGood, else nil.
func (s CompiledState) Effective() adapter.Artifact {
	if s.Current != nil {
		return s.Current
	}

	return s.LastGood
}

func logOutcome(root m.Path, outcome Outcome) {
	switch outcome.Kind {
	case OutcomeCompiled:
		slog.Debug("project compiled", "root", root, "diagnostics", len(outcome.Diagnostics))
	case OutcomeDiagnosedFailure:
		slog.Info("project failed to compile", "root", root, "diagnostics", len(outcome.Diagnostics))
	case OutcomeUnexpectedFailure:
		slog.Error("unexpected compiler failure", "root", root, "error", outcome.Message)
	case OutcomeNone:
	}
}
