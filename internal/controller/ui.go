// Package controller renders workspace state for the playground commands.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

// UI defines how workspace state is shown to the user.
// Implementations only read snapshots; they never change the workspace.
type UI interface {
	DisplayStatus(ctx context.Context, snapshot domain.Snapshot) error
	DisplayProjects(ctx context.Context, snapshot domain.Snapshot) error
	DisplayFunctions(ctx context.Context, snapshot domain.Snapshot) error
	DisplayDiagnostics(ctx context.Context, snapshot domain.Snapshot) error
	DisplayEnvironment(ctx context.Context, snapshot domain.Snapshot) error
	DisplayPrompt(ctx context.Context, function, testCase, text string) error
	DisplayChange(ctx context.Context, change domain.Change, snapshot domain.Snapshot)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func statusLabel(status m.Status) string {
	switch status {
	case m.StatusOK:
		return "OK"
	case m.StatusWarnings:
		return "WARN"
	case m.StatusErrors:
		return "ERR"
	}

	return string(status)
}
