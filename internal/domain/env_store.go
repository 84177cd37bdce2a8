// Package domain implements the multi-project compilation state manager.
package domain

import (
	"errors"
	"fmt"

	m "playground.dev/pkg/playground/internal/model"
)

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("position out of range")

// IndexError reports an environment position outside the store.
type IndexError struct {
	Position int
	Len      int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("environment position %d out of range [0, %d)", e.Position, e.Len)
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// EnvStore is the ordered list of environment entries. Keys may repeat;
// entries are addressed by position. The zero value is empty and ready.
type EnvStore struct {
	pairs [][2]string
}

// NewEnvStore builds a store holding env in order.
func NewEnvStore(env m.Environment) *EnvStore {
	return &EnvStore{pairs: env.Pairs()}
}

// Append adds an entry at the end.
func (s *EnvStore) Append(key, value string) {
	s.pairs = append(s.pairs, [2]string{key, value})
}

// SetValue replaces the value at position.
func (s *EnvStore) SetValue(position int, value string) error {
	if err := s.check(position); err != nil {
		return err
	}

	s.pairs[position][1] = value

	return nil
}

// SetKey replaces the key at position.
func (s *EnvStore) SetKey(position int, key string) error {
	if err := s.check(position); err != nil {
		return err
	}

	s.pairs[position][0] = key

	return nil
}

// RemoveAt deletes the entry at position; later entries shift down.
func (s *EnvStore) RemoveAt(position int) error {
	if err := s.check(position); err != nil {
		return err
	}

	s.pairs = append(s.pairs[:position], s.pairs[position+1:]...)

	return nil
}

// Reset removes every entry.
func (s *EnvStore) Reset() {
	s.pairs = nil
}

// Len returns the number of entries.
func (s *EnvStore) Len() int {
	return len(s.pairs)
}

// Environment returns a copy of the entries with their current positions.
func (s *EnvStore) Environment() m.Environment {
	return m.EnvironmentFromPairs(s.pairs)
}

func (s *EnvStore) check(position int) error {
	if position < 0 || position >= len(s.pairs) {
		return &IndexError{Position: position, Len: len(s.pairs)}
	}

	return nil
}
