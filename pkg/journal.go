// Package pkg provides utilities shared by the playground commands.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Journal is an append-only on-disk log of items of type T.
type Journal[T any] interface {
	Append(item T) error
	Close() error
}

type journalImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// CreateJournal creates the journal file at path, truncating any previous
// content. Parent directories are created as needed.
func CreateJournal[T any](path string) (Journal[T], error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("failed to create journal directory", "path", dir, "error", err)
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	// #nosec G304 - journal path is operator supplied
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		slog.Error("failed to create journal", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	slog.Debug("created journal", "path", path)

	return &journalImpl[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements Journal.
func (j *journalImpl[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	if err := j.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	j.length++

	return nil
}

// Close implements Journal. Closing twice is a no-op.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}

	err := j.file.Close()
	j.file = nil

	if err != nil {
		slog.Error("failed to close journal", "path", j.path, "error", err)
		return err
	}

	slog.Debug("closed journal", "path", j.path, "length", j.length)

	return nil
}

// ReadJournal decodes every item of the journal at path in order and hands
// it to fn. An error from fn stops the iteration and is returned as is.
func ReadJournal[T any](path string, fn func(index uint64, item T) error) error {
	// #nosec G304 - journal path is operator supplied
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := uint64(0); ; i++ {
		// gob leaves zero-valued fields untouched, so decode into a fresh value.
		var item T

		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			slog.Debug("journal read", "path", path, "count", i)
			return nil
		}

		if err != nil {
			slog.Error("failed to decode item", "path", path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}
}
