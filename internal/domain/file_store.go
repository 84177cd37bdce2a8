package domain

import (
	m "playground.dev/pkg/playground/internal/model"
)

// ApplyMutation returns the file set that results from applying mutation
// to current. current is never modified, so callers can swap the result in.
//
// Targeted updates apply renames first (a missing source is skipped), then
// deletions, then upserts. Replace-all keeps exactly the given files.
func ApplyMutation(current m.FileSet, mutation m.Mutation) m.FileSet {
	if mutation.ReplaceAll {
		next := make(m.FileSet, len(mutation.Files))
		for _, file := range mutation.Files {
			if file.Content != nil {
				next[file.Name] = *file.Content
			}
		}

		return next
	}

	next := current.Clone()

	for _, rename := range mutation.Renames {
		content, ok := next[rename.From]
		if !ok {
			continue
		}

		delete(next, rename.From)
		next[rename.To] = content
	}

	for _, file := range mutation.Files {
		if file.Content == nil {
			delete(next, file.Name)
		}
	}

	for _, file := range mutation.Files {
		if file.Content != nil {
			next[file.Name] = *file.Content
		}
	}

	return next
}
