package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "playground.dev/pkg/playground/internal/model"
)

// SchemaExtensions are the file extensions the schema compiler reads.
var SchemaExtensions = []string{".yaml", ".yml", ".toml"}

// SourceFSAdapter abstracts filesystem access for loading projects from
// disk. It hides direct `os` access so command logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// ReadProject loads every file under root whose extension is listed.
	// Hidden directories are skipped. An empty list matches every file.
	ReadProject(ctx context.Context, root m.Path, extensions ...string) (m.FileSet, error)

	// AbsPath resolves path to a cleaned absolute path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the commands.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadProject implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadProject(ctx context.Context, root m.Path, extensions ...string) (m.FileSet, error) {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("project root error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	files := make(m.FileSet)

	err = filepath.WalkDir(rootStr, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if entry.IsDir() {
			if path != rootStr && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasExtension(path, extensions) {
			return nil
		}

		// #nosec G304 - path comes from walking the requested project root
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files[m.Path(path)] = string(content)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", root, err)
	}

	return files, nil
}

// AbsPath implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(abs)), nil
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}

	return false
}
