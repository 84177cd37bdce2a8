// Package model defines the data structures shared by the playground state manager.
package model

import (
	"sort"
	"strings"
)

// Path represents a project root or a file path inside a project.
type Path string

// HasPrefix reports whether p lives under root. Matching is a plain string
// prefix, the same rule the compiler boundary uses to filter project files.
func (p Path) HasPrefix(root Path) bool {
	return strings.HasPrefix(string(p), string(root))
}

// FileSet maps file paths to their content. A path that is not in the map
// is not present in the project.
type FileSet map[Path]string

// Clone returns an independent copy of the set.
func (fs FileSet) Clone() FileSet {
	out := make(FileSet, len(fs))
	for path, content := range fs {
		out[path] = content
	}

	return out
}

// Under returns the files whose path is prefixed by root.
func (fs FileSet) Under(root Path) FileSet {
	out := make(FileSet, len(fs))
	for path, content := range fs {
		if path.HasPrefix(root) {
			out[path] = content
		}
	}

	return out
}

// Paths returns the file paths in lexical order.
func (fs FileSet) Paths() []Path {
	paths := make([]Path, 0, len(fs))
	for path := range fs {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// FileUpdate is a single targeted change. A nil Content deletes the file.
type FileUpdate struct {
	Name    Path
	Content *string
}

// Rename moves the content of From to To.
type Rename struct {
	From Path
	To   Path
}

// Mutation describes a batched change to one project's file set.
//
// With ReplaceAll set, Files becomes the entire new file set and Renames is
// ignored. Otherwise renames run first, then deletions, then upserts.
type Mutation struct {
	Reason     string
	Files      []FileUpdate
	Renames    []Rename
	ReplaceAll bool
}

// TargetedUpdate builds a targeted mutation.
func TargetedUpdate(reason string, files []FileUpdate, renames ...Rename) Mutation {
	return Mutation{Reason: reason, Files: files, Renames: renames}
}

// ReplaceAllFiles builds a replace-all mutation from a complete file map.
func ReplaceAllFiles(reason string, files FileSet) Mutation {
	updates := make([]FileUpdate, 0, len(files))
	for _, path := range files.Paths() {
		content := files[path]
		updates = append(updates, FileUpdate{Name: path, Content: &content})
	}

	return Mutation{Reason: reason, Files: updates, ReplaceAll: true}
}

// Content returns a pointer to s, for building FileUpdate literals.
func Content(s string) *string {
	return &s
}
