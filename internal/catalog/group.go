package catalog

import (
	"sort"

	"github.com/pbaille/dashalert/internal/domain"
)

// Groups maps a key to the items sharing it. Each group keeps insertion order.
type Groups[T any] struct {
	order  []string
	groups map[string][]T
}

// Group buckets items by key in first-occurrence order
func Group[T any](items []T, key func(T) string) *Groups[T] {
	g := &Groups[T]{groups: make(map[string][]T)}
	for _, it := range items {
		k := key(it)
		if _, ok := g.groups[k]; !ok {
			g.order = append(g.order, k)
		}
		g.groups[k] = append(g.groups[k], it)
	}
	return g
}

// GroupByIcon groups signs by their icon reference
func GroupByIcon(signs []domain.Category) *Groups[domain.Category] {
	return Group(signs, func(s domain.Category) string { return s.IconRef })
}

// Keys returns the group keys sorted lexicographically
func (g *Groups[T]) Keys() []string {
	keys := make([]string, len(g.order))
	copy(keys, g.order)
	sort.Strings(keys)
	return keys
}

// InsertionOrder returns the keys in first-occurrence order
func (g *Groups[T]) InsertionOrder() []string {
	keys := make([]string, len(g.order))
	copy(keys, g.order)
	return keys
}

// Get returns the items under key
func (g *Groups[T]) Get(key string) []T {
	return g.groups[key]
}

// First returns the representative shown for key
func (g *Groups[T]) First(key string) (T, bool) {
	items := g.groups[key]
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Len returns the number of groups
func (g *Groups[T]) Len() int {
	return len(g.order)
}
