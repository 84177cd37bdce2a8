package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"playground.dev/pkg/playground/internal/adapter"
	m "playground.dev/pkg/playground/internal/model"
)

var (
	// ErrUnknownProject is returned for operations on an unregistered root.
	ErrUnknownProject = errors.New("unknown project")
	// ErrCompilerUnavailable is returned when the compiler failed to load.
	ErrCompilerUnavailable = errors.New("compiler unavailable")
)

// ChangeKind tells subscribers what a transition touched.
type ChangeKind int

// Available ChangeKind values.
const (
	ChangeProject ChangeKind = iota
	ChangeProjectRemoved
	ChangeEnvironment
	ChangeSelection
	ChangeCompilerReady
)

// Change is delivered to subscribers after a transition is committed. Root
// is set for project changes only.
type Change struct {
	Kind ChangeKind
	Root m.Path
}

// Listener receives committed changes.
type Listener func(Change)

// Options configures a Workspace.
type Options struct {
	// Loader acquires the compiler once. Required.
	Loader adapter.CompilerLoader
	// Session persists selection and environment. Optional.
	Session adapter.SessionStore
	// Recorder observes compilations. Optional.
	Recorder adapter.CompileRecorder
}

type projectState struct {
	files m.FileSet
	state CompiledState
}

// Workspace owns every project's file set and compiled state.
//
// Transitions (file mutation plus recompile, environment and selection
// changes) run one at a time. The new file set and compiled state of a
// project are swapped in together, so readers never see one without the
// other.
type Workspace struct {
	opMu sync.Mutex

	mu            sync.RWMutex
	order         []m.Path
	projects      map[m.Path]*projectState
	env           *EnvStore
	envGeneration uint64
	selection     m.Selection

	loader   adapter.CompilerLoader
	loadOnce sync.Once
	ready    chan struct{}
	loaded   bool
	compiler adapter.Compiler
	loadErr  error

	session  adapter.SessionStore
	recorder adapter.CompileRecorder

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// NewWorkspace constructs an empty workspace.
func NewWorkspace(opts Options) *Workspace {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = adapter.NopRecorder{}
	}

	return &Workspace{
		projects:  make(map[m.Path]*projectState),
		env:       &EnvStore{},
		loader:    opts.Loader,
		ready:     make(chan struct{}),
		session:   opts.Session,
		recorder:  recorder,
		listeners: make(map[int]Listener),
	}
}

// Restore loads the persisted environment and selection.
func (w *Workspace) Restore(ctx context.Context) error {
	if w.session == nil {
		return nil
	}

	env, err := w.session.LoadEnvironment(ctx)
	if err != nil {
		return fmt.Errorf("restore environment: %w", err)
	}

	selection, err := w.session.LoadSelection(ctx)
	if err != nil {
		return fmt.Errorf("restore selection: %w", err)
	}

	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	w.env = NewEnvStore(env)
	w.envGeneration++
	w.selection = selection
	w.mu.Unlock()

	slog.Debug("restored session", "envEntries", len(env), "project", selection.Project)

	return nil
}

// Load starts acquiring the compiler in the background. Only the first
// call has an effect; recompiles call it implicitly. The load keeps ctx's
// values but not its cancellation.
func (w *Workspace) Load(ctx context.Context) {
	w.loadOnce.Do(func() {
		go func() {
			var (
				compiler adapter.Compiler
				err      error
			)

			if w.loader == nil {
				err = errors.New("no compiler loader configured")
			} else {
				compiler, err = w.loader(context.WithoutCancel(ctx))
				if err == nil && compiler == nil {
					err = errors.New("loader returned no compiler")
				}
			}

			w.mu.Lock()
			w.compiler = compiler
			w.loadErr = err
			w.loaded = true
			w.mu.Unlock()

			if err != nil {
				slog.Error("Failed to load compiler", "error", err)
			} else {
				slog.Info("compiler loaded", "version", compiler.Version())
			}

			// Waiting transitions resume only after listeners have seen this.
			w.notify(Change{Kind: ChangeCompilerReady})
			close(w.ready)
		}()
	})
}

// Ready is closed once the compiler load has finished, successfully or not.
func (w *Workspace) Ready() <-chan struct{} {
	return w.ready
}

func (w *Workspace) waitCompiler(ctx context.Context) (adapter.Compiler, error) {
	w.Load(ctx)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-w.ready:
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.loadErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompilerUnavailable, w.loadErr)
	}

	return w.compiler, nil
}

// ApplyMutation changes root's file set and recompiles it. The root is
// registered when new. Compilation failures are folded into the project's
// state; only a done ctx makes it return an error, in which case nothing
// is committed.
func (w *Workspace) ApplyMutation(ctx context.Context, root m.Path, mutation m.Mutation) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	slog.Debug("updating files",
		"root", root,
		"reason", mutation.Reason,
		"files", len(mutation.Files),
		"renames", len(mutation.Renames),
		"replaceAll", mutation.ReplaceAll,
	)

	w.mu.RLock()
	prev, known := w.projects[root]
	w.mu.RUnlock()

	var (
		files m.FileSet
		state CompiledState
	)

	if known {
		files = prev.files
		state = prev.state
	}

	next := ApplyMutation(files, mutation)

	outcome, generation, err := w.compile(ctx, root, next)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if !known {
		w.order = append(w.order, root)
	}

	w.projects[root] = &projectState{files: next, state: state.Apply(outcome, generation)}
	w.mu.Unlock()

	w.notify(Change{Kind: ChangeProject, Root: root})

	return nil
}

// Recompile compiles root again with its current files and environment.
func (w *Workspace) Recompile(ctx context.Context, root m.Path) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	return w.recompileLocked(ctx, root)
}

// Refresh recompiles the effective project when it was compiled against an
// older environment. Other projects stay stale until they are selected.
func (w *Workspace) Refresh(ctx context.Context) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	snapshot := w.Snapshot()
	if !snapshot.Stale() {
		return nil
	}

	project, ok := snapshot.EffectiveProject()
	if !ok {
		return nil
	}

	slog.Debug("refreshing stale project", "root", project.Root, "envGeneration", snapshot.EnvGeneration)

	return w.recompileLocked(ctx, project.Root)
}

func (w *Workspace) recompileLocked(ctx context.Context, root m.Path) error {
	w.mu.RLock()
	prev, known := w.projects[root]
	w.mu.RUnlock()

	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownProject, root)
	}

	outcome, generation, err := w.compile(ctx, root, prev.files)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if current, ok := w.projects[root]; ok {
		current.state = current.state.Apply(outcome, generation)
	}
	w.mu.Unlock()

	w.notify(Change{Kind: ChangeProject, Root: root})

	return nil
}

// compile runs one attempt against the current environment. It returns an
// error only when ctx ends before the compiler is available.
func (w *Workspace) compile(ctx context.Context, root m.Path, files m.FileSet) (Outcome, uint64, error) {
	w.mu.RLock()
	env := w.env.Environment()
	generation := w.envGeneration
	w.mu.RUnlock()

	compiler, err := w.waitCompiler(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Outcome{}, 0, err
		}

		outcome := UnexpectedFailure(err.Error())
		logOutcome(root, outcome)
		w.recorder.ObserveCompile(outcome.Kind.String(), 0)

		return outcome, generation, nil
	}

	start := time.Now()
	outcome := Recompile(ctx, compiler, root, files, env)
	w.recorder.ObserveCompile(outcome.Kind.String(), time.Since(start))
	logOutcome(root, outcome)

	return outcome, generation, nil
}

// RemoveProject forgets root: its files, compiled state and registry entry.
// Removing an unknown root is a no-op.
func (w *Workspace) RemoveProject(_ context.Context, root m.Path) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	if _, ok := w.projects[root]; !ok {
		w.mu.Unlock()
		slog.Debug("remove of unknown project ignored", "root", root)

		return nil
	}

	delete(w.projects, root)

	order := make([]m.Path, 0, len(w.order))
	for _, p := range w.order {
		if p != root {
			order = append(order, p)
		}
	}

	w.order = order
	w.mu.Unlock()

	slog.Info("project removed", "root", root)
	w.notify(Change{Kind: ChangeProjectRemoved, Root: root})

	return nil
}

// AppendEnv adds an environment entry.
func (w *Workspace) AppendEnv(ctx context.Context, key, value string) error {
	return w.updateEnv(ctx, func(s *EnvStore) error {
		s.Append(key, value)
		return nil
	})
}

// SetEnvValue replaces the value at position.
func (w *Workspace) SetEnvValue(ctx context.Context, position int, value string) error {
	return w.updateEnv(ctx, func(s *EnvStore) error { return s.SetValue(position, value) })
}

// SetEnvKey replaces the key at position.
func (w *Workspace) SetEnvKey(ctx context.Context, position int, key string) error {
	return w.updateEnv(ctx, func(s *EnvStore) error { return s.SetKey(position, key) })
}

// RemoveEnv deletes the entry at position.
func (w *Workspace) RemoveEnv(ctx context.Context, position int) error {
	return w.updateEnv(ctx, func(s *EnvStore) error { return s.RemoveAt(position) })
}

// ResetEnv removes every environment entry.
func (w *Workspace) ResetEnv(ctx context.Context) error {
	return w.updateEnv(ctx, func(s *EnvStore) error {
		s.Reset()
		return nil
	})
}

// updateEnv applies fn to a copy of the store and commits it on success.
// No project is recompiled here; see Refresh.
func (w *Workspace) updateEnv(ctx context.Context, fn func(*EnvStore) error) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.RLock()
	next := NewEnvStore(w.env.Environment())
	w.mu.RUnlock()

	if err := fn(next); err != nil {
		return err
	}

	w.mu.Lock()
	w.env = next
	w.envGeneration++
	w.mu.Unlock()

	if w.session != nil {
		if err := w.session.SaveEnvironment(ctx, next.Environment()); err != nil {
			return fmt.Errorf("persist environment: %w", err)
		}
	}

	w.notify(Change{Kind: ChangeEnvironment})

	return nil
}

// SelectProject stores the selected project. An empty root is ignored.
func (w *Workspace) SelectProject(ctx context.Context, root m.Path) error {
	if root == "" {
		return nil
	}

	return w.updateSelection(ctx, func(s *m.Selection) { s.Project = root })
}

// SelectFunction stores the selected function. An empty name is ignored.
func (w *Workspace) SelectFunction(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}

	return w.updateSelection(ctx, func(s *m.Selection) { s.Function = name })
}

// SelectTestCase stores the selected test case. An empty name is ignored.
func (w *Workspace) SelectTestCase(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}

	return w.updateSelection(ctx, func(s *m.Selection) { s.TestCase = name })
}

func (w *Workspace) updateSelection(ctx context.Context, fn func(*m.Selection)) error {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	fn(&w.selection)
	selection := w.selection
	w.mu.Unlock()

	if w.session != nil {
		if err := w.session.SaveSelection(ctx, selection); err != nil {
			return fmt.Errorf("persist selection: %w", err)
		}
	}

	w.notify(Change{Kind: ChangeSelection})

	return nil
}

// Snapshot copies the current state for reading.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snapshot := Snapshot{
		Projects:      make([]ProjectSnapshot, 0, len(w.order)),
		Selection:     w.selection,
		Environment:   w.env.Environment(),
		EnvGeneration: w.envGeneration,
	}

	if w.loaded && w.loadErr == nil && w.compiler != nil {
		snapshot.CompilerReady = true
		snapshot.CompilerVersion = w.compiler.Version()
	}

	for _, root := range w.order {
		p := w.projects[root]
		snapshot.Projects = append(snapshot.Projects, ProjectSnapshot{
			Root:  root,
			Files: p.files.Clone(),
			State: p.state,
		})
	}

	return snapshot
}

// Subscribe registers fn for committed changes and returns a function that
// unregisters it. Listeners run synchronously on the goroutine that made
// the change (the loader goroutine for ChangeCompilerReady) and must not
// call back into transition methods.
func (w *Workspace) Subscribe(fn Listener) func() {
	w.listenersMu.Lock()
	defer w.listenersMu.Unlock()

	id := w.nextListener
	w.nextListener++
	w.listeners[id] = fn

	return func() {
		w.listenersMu.Lock()
		defer w.listenersMu.Unlock()

		delete(w.listeners, id)
	}
}

func (w *Workspace) notify(change Change) {
	w.listenersMu.Lock()
	listeners := make([]Listener, 0, len(w.listeners))

	for _, fn := range w.listeners {
		listeners = append(listeners, fn)
	}
	w.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}
