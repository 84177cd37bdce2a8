package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "playground.dev/pkg/playground/internal/model"
)

func openTestSessionStore(t *testing.T, cfg BadgerSessionConfig) *BadgerSessionStore {
	t.Helper()

	store, err := OpenBadgerSessionStore(cfg)
	require.NoError(t, err)

	return store
}

func TestBadgerSessionStore_EmptySession(t *testing.T) {
	ctx := context.Background()
	store := openTestSessionStore(t, BadgerSessionConfig{InMemory: true})
	defer store.Close()

	selection, err := store.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, m.Selection{}, selection)

	env, err := store.LoadEnvironment(ctx)
	require.NoError(t, err)
	assert.Empty(t, env)

	assert.NotEmpty(t, store.SessionID())
}

func TestBadgerSessionStore_RoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := openTestSessionStore(t, BadgerSessionConfig{InMemory: true, SessionID: "s1"})
	defer store.Close()

	selection := m.Selection{Project: "/p", Function: "Greet", TestCase: "bob"}
	env := m.EnvironmentFromPairs([][2]string{{"A", "1"}, {"A", "2"}, {"B", ""}})

	// Act
	require.NoError(t, store.SaveSelection(ctx, selection))
	require.NoError(t, store.SaveEnvironment(ctx, env))

	gotSelection, err := store.LoadSelection(ctx)
	require.NoError(t, err)

	gotEnv, err := store.LoadEnvironment(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, selection, gotSelection)
	assert.Equal(t, env, gotEnv)
}

func TestBadgerSessionStore_ClearedSelectionStaysCleared(t *testing.T) {
	ctx := context.Background()
	store := openTestSessionStore(t, BadgerSessionConfig{InMemory: true})
	defer store.Close()

	require.NoError(t, store.SaveSelection(ctx, m.Selection{Project: "/p", Function: "F"}))
	require.NoError(t, store.SaveSelection(ctx, m.Selection{Project: "/p"}))

	got, err := store.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, m.Selection{Project: "/p"}, got)
}

func TestBadgerSessionStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	env := m.EnvironmentFromPairs([][2]string{{"KEY", "value"}})

	first := openTestSessionStore(t, BadgerSessionConfig{Dir: dir, SessionID: "s1"})
	require.NoError(t, first.SaveEnvironment(ctx, env))
	require.NoError(t, first.Close())

	second := openTestSessionStore(t, BadgerSessionConfig{Dir: dir, SessionID: "s1"})
	defer second.Close()

	got, err := second.LoadEnvironment(ctx)
	require.NoError(t, err)
	assert.Equal(t, env, got)
}

func TestBadgerSessionStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := openTestSessionStore(t, BadgerSessionConfig{Dir: dir, SessionID: "one"})
	require.NoError(t, first.SaveSelection(ctx, m.Selection{Function: "F"}))
	require.NoError(t, first.Close())

	second := openTestSessionStore(t, BadgerSessionConfig{Dir: dir, SessionID: "two"})
	defer second.Close()

	got, err := second.LoadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, m.Selection{}, got)
}

func TestBadgerSessionStore_CancelledContext(t *testing.T) {
	store := openTestSessionStore(t, BadgerSessionConfig{InMemory: true})
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.SaveSelection(ctx, m.Selection{}), context.Canceled)

	_, err := store.LoadEnvironment(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
