package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"playground.dev/pkg/playground/internal/adapter"
)

const summarizeSchema = `required_env: [AUDIENCE]
functions:
  - name: Summarize
    params: [text]
    prompt: 'Summarize {{ .text }} for {{ env "AUDIENCE" }}'
    tests:
      - name: short
        args:
          text: '"hello"'
      - name: long
        args:
          text: '"a much longer text"'
  - name: Greet
    params: [name]
    prompt: 'Hello {{ .name }}'
    tests:
      - name: bob
        args:
          name: '"Bob"'
`

// sharedStore keeps one in-memory session alive across the commands of a
// test; the commands' Close calls are ignored.
type sharedStore struct {
	adapter.SessionStore
}

func (sharedStore) Close() error { return nil }

func setupCmdTest(t *testing.T) {
	t.Helper()

	store, err := adapter.OpenBadgerSessionStore(adapter.BadgerSessionConfig{InMemory: true, SessionID: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	originalOpen := openSessionStore
	openSessionStore = func() (adapter.SessionStore, error) { return sharedStore{store}, nil }
	t.Cleanup(func() { openSessionStore = originalOpen })

	originalLogger := slog.Default()
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() {
		viper.Set(logFilenameKey, defaultLogFilename)
		slog.SetDefault(originalLogger)
	})
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(
		newCheckCmd(),
		newFunctionsCmd(),
		newRenderCmd(),
		newEnvCmd(),
		newSelectCmd(),
		newServeCmd(),
		newReplayCmd(),
	)

	return cmd
}

func executeCmd(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := newTestRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	if stdin != nil {
		cmd.SetIn(stdin)
	}

	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}
