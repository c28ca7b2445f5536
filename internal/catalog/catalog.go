// Package catalog holds the embedded warning-sign and emergency-guide
// datasets and the search helpers every screen uses over them.
package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/pbaille/dashalert/internal/domain"
)

// namespace seeds the name-based IDs so they stay stable across runs.
var namespace = uuid.MustParse("6f1c2a4e-8d3b-4f7a-9c2e-5b1d0a7e3c91")

// minPrefix is the shortest ID prefix Find accepts.
const minPrefix = 8

// Catalog is the read-only set of dashboard warning signs
type Catalog struct {
	signs []domain.Category
}

var defaultCatalog = New(dashboardSigns)

// Default returns the built-in dashboard catalog
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from sign literals, assigning IDs
func New(signs []domain.Category) *Catalog {
	built := make([]domain.Category, len(signs))
	for i, s := range signs {
		built[i] = withIDs(s)
	}
	return &Catalog{signs: built}
}

func withIDs(c domain.Category) domain.Category {
	catID := uuid.NewSHA1(namespace, []byte("sign:"+c.Name))
	entries := make([]domain.Entry, len(c.Entries))
	for i, e := range c.Entries {
		e.ID = uuid.NewSHA1(catID, []byte(fmt.Sprintf("%d:%s", i, e.Name))).String()
		entries[i] = e
	}
	c.ID = catID.String()
	c.Entries = entries
	return c
}

// All returns every sign in authorial order
func (c *Catalog) All() []domain.Category {
	out := make([]domain.Category, len(c.signs))
	copy(out, c.signs)
	return out
}

// Len returns the number of signs
func (c *Catalog) Len() int {
	return len(c.signs)
}

// Filter returns the signs whose name contains query, ignoring case.
// An empty query returns the whole catalog.
func (c *Catalog) Filter(query string) []domain.Category {
	return FilterBy(c.signs, query, func(s domain.Category) string { return s.Name })
}

// Find looks a sign up by ID, unique ID prefix, or exact name
func (c *Catalog) Find(ref string) (domain.Category, bool) {
	return find(c.signs, ref,
		func(s domain.Category) string { return s.ID },
		func(s domain.Category) string { return s.Name })
}

// FilterBy keeps the items whose name contains query under Unicode case
// folding. Relative order is preserved and an empty query keeps everything.
func FilterBy[T any](items []T, query string, name func(T) string) []T {
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	needle := fold(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold(name(it)), needle) {
			out = append(out, it)
		}
	}
	return out
}

// fold builds a fresh Caser each call; Casers carry state.
func fold(s string) string {
	return cases.Fold().String(s)
}

func find[T any](items []T, ref string, id, name func(T) string) (T, bool) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, false
	}

	for _, it := range items {
		if id(it) == ref {
			return it, true
		}
	}

	if len(ref) >= minPrefix {
		var match *T
		for i := range items {
			if strings.HasPrefix(id(items[i]), ref) {
				if match != nil {
					// ambiguous
					match = nil
					break
				}
				match = &items[i]
			}
		}
		if match != nil {
			return *match, true
		}
	}

	want := fold(ref)
	for _, it := range items {
		if fold(name(it)) == want {
			return it, true
		}
	}
	return zero, false
}
