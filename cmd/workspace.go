package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

// session bundles a workspace with the store it persists to.
type session struct {
	workspace *domain.Workspace
	store     adapter.SessionStore
}

// openSession restores the stored session into a fresh workspace and starts
// loading the compiler.
func openSession(ctx context.Context, recorder adapter.CompileRecorder) (*session, error) {
	store, err := openSessionStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	ws := domain.NewWorkspace(domain.Options{
		Loader:   compilerLoader,
		Session:  store,
		Recorder: recorder,
	})

	if err := ws.Restore(ctx); err != nil {
		return nil, errors.Join(err, store.Close())
	}

	ws.Load(ctx)

	return &session{workspace: ws, store: store}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Error("Failed to close session store", "error", err)
	}
}

// loadProject reads dir from disk and registers it as a project.
func (s *session) loadProject(ctx context.Context, dir string) (m.Path, error) {
	root, err := resolveRoot(ctx, dir)
	if err != nil {
		return "", err
	}

	files, err := sourceFS.ReadProject(ctx, root, adapter.SchemaExtensions...)
	if err != nil {
		return "", err
	}

	if err := s.workspace.ApplyMutation(ctx, root, m.ReplaceAllFiles("load "+dir, files)); err != nil {
		return "", err
	}

	return root, nil
}

// loadProjects registers every dir. Without dirs it loads the stored project
// selection, or the working directory when nothing is selected.
func (s *session) loadProjects(ctx context.Context, dirs []string) ([]m.Path, error) {
	if len(dirs) == 0 {
		dirs = []string{"."}
		if selected := s.workspace.Snapshot().Selection.Project; selected != "" {
			dirs = []string{string(selected)}
		}
	}

	roots := make([]m.Path, 0, len(dirs))

	for _, dir := range dirs {
		root, err := s.loadProject(ctx, dir)
		if err != nil {
			return nil, err
		}

		roots = append(roots, root)
	}

	return roots, nil
}

// snapshot refreshes the effective project if the environment moved on and
// returns the resulting state.
func (s *session) snapshot(ctx context.Context) (domain.Snapshot, error) {
	if err := s.workspace.Refresh(ctx); err != nil {
		return domain.Snapshot{}, err
	}

	return s.workspace.Snapshot(), nil
}

func resolveRoot(ctx context.Context, dir string) (m.Path, error) {
	root, err := sourceFS.AbsPath(ctx, m.Path(dir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	return root, nil
}
