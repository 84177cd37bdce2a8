package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	m "playground.dev/pkg/playground/internal/model"
)

const maxMessageSize = 16 << 20

// Envelope carries a decoded event together with its wire message.
type Envelope struct {
	Message Message
	Event   m.Event
}

// EventSource delivers inbound events in arrival order.
type EventSource interface {
	// Stream sends envelopes to out until the input ends or ctx is done.
	// It does not close out.
	Stream(ctx context.Context, out chan<- Envelope) error
}

// JSONLineSource reads one wire message per line.
type JSONLineSource struct {
	r io.Reader
}

// NewJSONLineSource constructs a JSONLineSource over r.
func NewJSONLineSource(r io.Reader) *JSONLineSource {
	return &JSONLineSource{r: r}
}

// Stream implements EventSource. Malformed lines are logged and skipped.
func (s *JSONLineSource) Stream(ctx context.Context, out chan<- Envelope) error {
	scanner := bufio.NewScanner(s.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	line := 0

	for scanner.Scan() {
		line++

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		msg, err := DecodeMessage(raw)
		if err != nil {
			slog.Warn("skipping malformed message", "line", line, "error", err)
			continue
		}

		ev, err := msg.Event()
		if err != nil {
			slog.Warn("skipping message", "line", line, "command", msg.Command, "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- Envelope{Message: msg, Event: ev}:
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read messages: %w", err)
	}

	return nil
}

// WatchSource turns a directory into a project: it first sends an
// add_project with every matching file, then a modify_file per change.
type WatchSource struct {
	root       string
	extensions []string
}

// NewWatchSource constructs a WatchSource. An empty extension list matches
// every file.
func NewWatchSource(root string, extensions ...string) (*WatchSource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	return &WatchSource{root: abs, extensions: extensions}, nil
}

// Root returns the absolute project root.
func (s *WatchSource) Root() m.Path {
	return m.Path(s.root)
}

// Stream implements EventSource. It runs until ctx is done.
func (s *WatchSource) Stream(ctx context.Context, out chan<- Envelope) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("Failed to close watcher", "root", s.root, "error", err)
		}
	}()

	files, err := s.scan(watcher, s.root)
	if err != nil {
		return err
	}

	known := make(map[m.Path]struct{}, len(files))
	for name := range files {
		known[name] = struct{}{}
	}

	if err := s.send(ctx, out, m.AddProject{Root: s.Root(), Files: files}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			for _, ev := range s.translate(watcher, known, event) {
				if err := s.send(ctx, out, ev); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("watch error", "root", s.root, "error", err)
		}
	}
}

// scan registers every directory under dir with the watcher and collects
// the matching files. Hidden directories below the root are skipped.
func (s *WatchSource) scan(watcher *fsnotify.Watcher, dir string) (m.FileSet, error) {
	files := make(m.FileSet)

	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != s.root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}

			return watcher.Add(path)
		}

		if !s.matches(path) {
			return nil
		}

		content, err := os.ReadFile(path) // #nosec G304 - path comes from walking the watched root
		if err != nil {
			return err
		}

		files[m.Path(path)] = string(content)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	slog.Debug("scanned watch directory", "root", s.root, "dir", dir, "files", len(files))

	return files, nil
}

// translate maps one filesystem event to file events. known holds the files
// reported so far and is updated in place.
func (s *WatchSource) translate(watcher *fsnotify.Watcher, known map[m.Path]struct{}, event fsnotify.Event) []m.Event {
	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}

		if info.IsDir() {
			return s.created(watcher, known, event.Name)
		}

		if !s.matches(event.Name) {
			return nil
		}

		content, err := os.ReadFile(event.Name)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Warn("failed to read changed file", "path", event.Name, "error", err)
			}

			return nil
		}

		known[m.Path(event.Name)] = struct{}{}

		return []m.Event{m.ModifyFile{Root: s.Root(), Name: m.Path(event.Name), Content: m.Content(string(content))}}

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		return s.removed(known, event.Name)
	}

	return nil
}

// created watches a new directory and reports the files already in it.
func (s *WatchSource) created(watcher *fsnotify.Watcher, known map[m.Path]struct{}, dir string) []m.Event {
	files, err := s.scan(watcher, dir)
	if err != nil {
		slog.Warn("failed to watch new directory", "path", dir, "error", err)
		return nil
	}

	names := make([]m.Path, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	slices.Sort(names)

	events := make([]m.Event, 0, len(names))
	for _, name := range names {
		known[name] = struct{}{}
		events = append(events, m.ModifyFile{Root: s.Root(), Name: name, Content: m.Content(files[name])})
	}

	return events
}

// removed reports a delete for path and for every known file below it.
func (s *WatchSource) removed(known map[m.Path]struct{}, path string) []m.Event {
	prefix := path + string(filepath.Separator)

	var names []m.Path
	for name := range known {
		if string(name) == path || strings.HasPrefix(string(name), prefix) {
			names = append(names, name)
		}
	}

	if len(names) == 0 && s.matches(path) {
		names = append(names, m.Path(path))
	}

	slices.Sort(names)

	events := make([]m.Event, 0, len(names))
	for _, name := range names {
		delete(known, name)
		events = append(events, m.ModifyFile{Root: s.Root(), Name: name})
	}

	return events
}

func (s *WatchSource) matches(path string) bool {
	return hasExtension(path, s.extensions)
}

func (s *WatchSource) send(ctx context.Context, out chan<- Envelope, ev m.Event) error {
	msg, err := EncodeEvent(ev)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case out <- Envelope{Message: msg, Event: ev}:
		return nil
	}
}
