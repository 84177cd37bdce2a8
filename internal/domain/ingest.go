package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"playground.dev/pkg/playground/internal/adapter"
	m "playground.dev/pkg/playground/internal/model"
)

// ErrUnknownEvent is returned for event types Handle does not know.
var ErrUnknownEvent = errors.New("unknown event")

// MessageJournal records wire messages before they are applied.
type MessageJournal interface {
	Append(msg adapter.Message) error
}

// Ingestor applies externally delivered events to a workspace in arrival
// order.
type Ingestor struct {
	workspace *Workspace
	journal   MessageJournal
	recorder  adapter.CompileRecorder
}

// IngestorOption customizes an Ingestor.
type IngestorOption func(*Ingestor)

// WithJournal records every envelope's message before it is applied.
func WithJournal(journal MessageJournal) IngestorOption {
	return func(i *Ingestor) {
		i.journal = journal
	}
}

// WithEventRecorder counts ingested events.
func WithEventRecorder(recorder adapter.CompileRecorder) IngestorOption {
	return func(i *Ingestor) {
		i.recorder = recorder
	}
}

// NewIngestor constructs an Ingestor for workspace.
func NewIngestor(workspace *Workspace, opts ...IngestorOption) *Ingestor {
	i := &Ingestor{workspace: workspace, recorder: adapter.NopRecorder{}}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Handle applies a single event and waits for its recompilation.
func (i *Ingestor) Handle(ctx context.Context, ev m.Event) error {
	switch e := ev.(type) {
	case m.ModifyFile:
		update := m.FileUpdate{Name: e.Name, Content: e.Content}
		return i.workspace.ApplyMutation(ctx, e.Root, m.TargetedUpdate("modify_file "+string(e.Name), []m.FileUpdate{update}))
	case m.AddProject:
		return i.workspace.ApplyMutation(ctx, e.Root, m.ReplaceAllFiles("add_project", e.Files))
	case m.RemoveProject:
		return i.workspace.RemoveProject(ctx, e.Root)
	}

	return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}

// Run consumes envelopes until in is closed or ctx is done. A failing event
// is logged and the loop moves on; only ctx ends it early.
func (i *Ingestor) Run(ctx context.Context, in <-chan adapter.Envelope) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-in:
			if !ok {
				return nil
			}

			if err := i.ingest(ctx, env); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				slog.Error("Failed to apply event", "command", env.Message.Command, "root", rootOf(env.Event), "error", err)
			}
		}
	}
}

func (i *Ingestor) ingest(ctx context.Context, env adapter.Envelope) error {
	if i.journal != nil && env.Message.Command != "" {
		if err := i.journal.Append(env.Message); err != nil {
			return fmt.Errorf("journal %s: %w", env.Message.Command, err)
		}
	}

	i.recorder.ObserveEvent(env.Message.Command)

	return i.Handle(ctx, env.Event)
}

func rootOf(ev m.Event) m.Path {
	if ev == nil {
		return ""
	}

	return ev.ProjectRoot()
}
