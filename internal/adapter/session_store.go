package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	m "playground.dev/pkg/playground/internal/model"
)

// Stable keys of the persisted session state.
const (
	SelectedProjectKey  = "selected-project"
	SelectedFunctionKey = "selected-function"
	SelectedTestCaseKey = "selected-test-case"
	EnvKeyValuesKey     = "env-key-values"
)

// SessionStore durably keeps the UI selection and the environment entries
// of one session.
type SessionStore interface {
	LoadSelection(ctx context.Context) (m.Selection, error)
	SaveSelection(ctx context.Context, selection m.Selection) error
	LoadEnvironment(ctx context.Context) (m.Environment, error)
	SaveEnvironment(ctx context.Context, env m.Environment) error
	Close() error
}

// BadgerSessionConfig configures a BadgerSessionStore.
type BadgerSessionConfig struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string
	// InMemory keeps the database in memory only.
	InMemory bool
	// SessionID scopes the keys. A random id is generated when empty.
	SessionID string
	// Logger receives badger's internal log output. Nil silences it.
	Logger *slog.Logger
}

// BadgerSessionStore is a SessionStore backed by badger with msgpack values.
type BadgerSessionStore struct {
	db        *badger.DB
	sessionID string
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadgerSessionStore opens (or creates) the session database.
func OpenBadgerSessionStore(cfg BadgerSessionConfig) (*BadgerSessionStore, error) {
	var opts badger.Options

	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("create session directory %s: %w", cfg.Dir, err)
		}

		opts = badger.DefaultOptions(cfg.Dir)
	}

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	slog.Debug("opened session store", "dir", cfg.Dir, "inMemory", cfg.InMemory, "session", sessionID)

	return &BadgerSessionStore{db: db, sessionID: sessionID}, nil
}

// SessionID returns the id the keys are scoped to.
func (s *BadgerSessionStore) SessionID() string {
	return s.sessionID
}

// LoadSelection implements SessionStore.
func (s *BadgerSessionStore) LoadSelection(ctx context.Context) (m.Selection, error) {
	var (
		selection m.Selection
		project   string
	)

	err := s.view(ctx, func(txn *badger.Txn) error {
		if err := s.get(txn, SelectedProjectKey, &project); err != nil {
			return err
		}

		if err := s.get(txn, SelectedFunctionKey, &selection.Function); err != nil {
			return err
		}

		return s.get(txn, SelectedTestCaseKey, &selection.TestCase)
	})
	if err != nil {
		return m.Selection{}, fmt.Errorf("load selection: %w", err)
	}

	selection.Project = m.Path(project)

	return selection, nil
}

// SaveSelection implements SessionStore. Empty fields are written as empty
// strings so a cleared selection stays cleared.
func (s *BadgerSessionStore) SaveSelection(ctx context.Context, selection m.Selection) error {
	err := s.update(ctx, func(txn *badger.Txn) error {
		if err := s.set(txn, SelectedProjectKey, string(selection.Project)); err != nil {
			return err
		}

		if err := s.set(txn, SelectedFunctionKey, selection.Function); err != nil {
			return err
		}

		return s.set(txn, SelectedTestCaseKey, selection.TestCase)
	})
	if err != nil {
		return fmt.Errorf("save selection: %w", err)
	}

	return nil
}

// LoadEnvironment implements SessionStore.
func (s *BadgerSessionStore) LoadEnvironment(ctx context.Context) (m.Environment, error) {
	var pairs [][2]string

	err := s.view(ctx, func(txn *badger.Txn) error {
		return s.get(txn, EnvKeyValuesKey, &pairs)
	})
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return m.EnvironmentFromPairs(pairs), nil
}

// SaveEnvironment implements SessionStore.
func (s *BadgerSessionStore) SaveEnvironment(ctx context.Context, env m.Environment) error {
	err := s.update(ctx, func(txn *badger.Txn) error {
		return s.set(txn, EnvKeyValuesKey, env.Pairs())
	})
	if err != nil {
		return fmt.Errorf("save environment: %w", err)
	}

	return nil
}

// Close implements SessionStore.
func (s *BadgerSessionStore) Close() error {
	return s.db.Close()
}

func (s *BadgerSessionStore) key(name string) []byte {
	return []byte("session/" + s.sessionID + "/" + name)
}

func (s *BadgerSessionStore) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(fn)
}

func (s *BadgerSessionStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(fn)
}

// get decodes the value stored under name into out. A missing key leaves
// out untouched.
func (s *BadgerSessionStore) get(txn *badger.Txn, name string, out any) error {
	item, err := txn.Get(s.key(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("get %s: %w", name, err)
	}

	return item.Value(func(val []byte) error {
		if err := msgpack.Unmarshal(val, out); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}

		return nil
	})
}

func (s *BadgerSessionStore) set(txn *badger.Txn, name string, value any) error {
	raw, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := txn.Set(s.key(name), raw); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}

	return nil
}
