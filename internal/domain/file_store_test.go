package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

func TestApplyMutation_Targeted(t *testing.T) {
	tests := []struct {
		name     string
		current  m.FileSet
		mutation m.Mutation
		want     m.FileSet
	}{
		{
			name:     "upsert adds and overwrites",
			current:  m.FileSet{"/p/a": "1"},
			mutation: m.TargetedUpdate("edit", []m.FileUpdate{{Name: "/p/a", Content: m.Content("2")}, {Name: "/p/b", Content: m.Content("3")}}),
			want:     m.FileSet{"/p/a": "2", "/p/b": "3"},
		},
		{
			name:     "absent content deletes",
			current:  m.FileSet{"/p/a.txt": "x"},
			mutation: m.TargetedUpdate("delete", []m.FileUpdate{{Name: "/p/a.txt"}}),
			want:     m.FileSet{},
		},
		{
			name:     "deleting a missing file is a no-op",
			current:  m.FileSet{"/p/a": "1"},
			mutation: m.TargetedUpdate("delete", []m.FileUpdate{{Name: "/p/missing"}}),
			want:     m.FileSet{"/p/a": "1"},
		},
		{
			name:     "rename moves content",
			current:  m.FileSet{"/p/a": "1"},
			mutation: m.TargetedUpdate("rename", nil, m.Rename{From: "/p/a", To: "/p/b"}),
			want:     m.FileSet{"/p/b": "1"},
		},
		{
			name:     "rename of missing source is a no-op",
			current:  m.FileSet{"/p/a": "1"},
			mutation: m.TargetedUpdate("rename", nil, m.Rename{From: "/p/missing", To: "/p/b"}),
			want:     m.FileSet{"/p/a": "1"},
		},
		{
			name:    "renames run before deletes and upserts",
			current: m.FileSet{"/p/a": "old"},
			mutation: m.TargetedUpdate("mixed",
				[]m.FileUpdate{{Name: "/p/b", Content: m.Content("new")}, {Name: "/p/a"}},
				m.Rename{From: "/p/a", To: "/p/c"},
			),
			want: m.FileSet{"/p/b": "new", "/p/c": "old"},
		},
		{
			name:    "deletes run before upserts of the same path",
			current: m.FileSet{"/p/a": "old"},
			mutation: m.TargetedUpdate("mixed", []m.FileUpdate{
				{Name: "/p/a", Content: m.Content("new")},
				{Name: "/p/a"},
			}),
			want: m.FileSet{"/p/a": "new"},
		},
		{
			name:     "nil current set",
			current:  nil,
			mutation: m.TargetedUpdate("create", []m.FileUpdate{{Name: "/p/a", Content: m.Content("1")}}),
			want:     m.FileSet{"/p/a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ApplyMutation(tt.current, tt.mutation)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyMutation_ReplaceAllDropsUnlistedFiles(t *testing.T) {
	// Arrange
	first := domain.ApplyMutation(nil, m.ReplaceAllFiles("add", m.FileSet{"a": "1", "b": "2"}))

	// Act
	second := domain.ApplyMutation(first, m.ReplaceAllFiles("add", m.FileSet{"a": "1"}))

	// Assert
	assert.Equal(t, m.FileSet{"a": "1", "b": "2"}, first)
	assert.Equal(t, m.FileSet{"a": "1"}, second)
}

func TestApplyMutation_DoesNotModifyInput(t *testing.T) {
	current := m.FileSet{"/p/a": "1"}

	_ = domain.ApplyMutation(current, m.TargetedUpdate("edit", []m.FileUpdate{{Name: "/p/a"}, {Name: "/p/b", Content: m.Content("2")}}))

	assert.Equal(t, m.FileSet{"/p/a": "1"}, current)
}

func TestApplyMutation_SequenceMatchesNetEffect(t *testing.T) {
	mutations := []m.Mutation{
		m.ReplaceAllFiles("load", m.FileSet{"/p/a": "1", "/p/b": "2"}),
		m.TargetedUpdate("edit", []m.FileUpdate{{Name: "/p/a", Content: m.Content("10")}}),
		m.TargetedUpdate("rename", nil, m.Rename{From: "/p/b", To: "/p/c"}),
		m.TargetedUpdate("delete", []m.FileUpdate{{Name: "/p/a"}}),
		m.TargetedUpdate("add", []m.FileUpdate{{Name: "/p/d", Content: m.Content("4")}}),
	}

	var files m.FileSet
	for _, mutation := range mutations {
		files = domain.ApplyMutation(files, mutation)
	}

	assert.Equal(t, m.FileSet{"/p/c": "2", "/p/d": "4"}, files)
}
