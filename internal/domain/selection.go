package domain

import (
	m "playground.dev/pkg/playground/internal/model"
)

// firstMatch returns the item whose key equals stored, falling back to the
// first item. It reports false only when items is empty.
func firstMatch[T any](items []T, key func(T) string, stored string) (T, bool) {
	var zero T

	if len(items) == 0 {
		return zero, false
	}

	if stored != "" {
		for _, item := range items {
			if key(item) == stored {
				return item, true
			}
		}
	}

	return items[0], true
}

// EffectiveProject resolves the stored project against the registry.
func EffectiveProject(registry []m.Path, stored m.Path) (m.Path, bool) {
	return firstMatch(registry, func(p m.Path) string { return string(p) }, string(stored))
}

// EffectiveFunction resolves the stored function against the listing.
func EffectiveFunction(functions []m.Function, stored string) (m.Function, bool) {
	return firstMatch(functions, func(f m.Function) string { return f.Name }, stored)
}

// EffectiveTestCase resolves the stored test case against fn's tests.
func EffectiveTestCase(fn m.Function, stored string) (m.TestCase, bool) {
	return firstMatch(fn.TestCases, func(tc m.TestCase) string { return tc.Name }, stored)
}
