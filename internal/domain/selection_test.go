package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"playground.dev/pkg/playground/internal/domain"
	m "playground.dev/pkg/playground/internal/model"
)

func TestEffectiveProject(t *testing.T) {
	tests := []struct {
		name     string
		registry []m.Path
		stored   m.Path
		want     m.Path
		wantOK   bool
	}{
		{"stored and registered", []m.Path{"/a", "/b"}, "/b", "/b", true},
		{"stored but unknown falls back to first", []m.Path{"/a", "/b"}, "/gone", "/a", true},
		{"nothing stored", []m.Path{"/a", "/b"}, "", "/a", true},
		{"empty registry", nil, "/a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.EffectiveProject(tt.registry, tt.stored)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveFunctionAndTestCase(t *testing.T) {
	functions := []m.Function{
		{Name: "First", TestCases: []m.TestCase{{Name: "one"}, {Name: "two"}}},
		{Name: "Second"},
	}

	fn, ok := domain.EffectiveFunction(functions, "Second")
	assert.True(t, ok)
	assert.Equal(t, "Second", fn.Name)

	fn, ok = domain.EffectiveFunction(functions, "Missing")
	assert.True(t, ok)
	assert.Equal(t, "First", fn.Name)

	_, ok = domain.EffectiveFunction(nil, "First")
	assert.False(t, ok)

	tc, ok := domain.EffectiveTestCase(functions[0], "two")
	assert.True(t, ok)
	assert.Equal(t, "two", tc.Name)

	tc, ok = domain.EffectiveTestCase(functions[0], "")
	assert.True(t, ok)
	assert.Equal(t, "one", tc.Name)

	_, ok = domain.EffectiveTestCase(functions[1], "one")
	assert.False(t, ok)
}
