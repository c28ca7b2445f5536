package catalog

import (
	"github.com/google/uuid"

	"github.com/pbaille/dashalert/internal/domain"
)

// GuideCatalog is the read-only emergency guide
type GuideCatalog struct {
	guides []domain.Guide
}

var defaultGuides = NewGuides(emergencyGuides)

// Guides returns the built-in emergency guide
func Guides() *GuideCatalog {
	return defaultGuides
}

// NewGuides builds a guide catalog, assigning IDs
func NewGuides(guides []domain.Guide) *GuideCatalog {
	built := make([]domain.Guide, len(guides))
	for i, g := range guides {
		g.ID = uuid.NewSHA1(namespace, []byte("guide:"+g.Name)).String()
		built[i] = g
	}
	return &GuideCatalog{guides: built}
}

// All returns every guide in authorial order
func (c *GuideCatalog) All() []domain.Guide {
	out := make([]domain.Guide, len(c.guides))
	copy(out, c.guides)
	return out
}

// Filter returns the guides whose name contains query, ignoring case
func (c *GuideCatalog) Filter(query string) []domain.Guide {
	return FilterBy(c.guides, query, func(g domain.Guide) string { return g.Name })
}

// Find looks a guide up by ID, unique ID prefix, or exact name
func (c *GuideCatalog) Find(ref string) (domain.Guide, bool) {
	return find(c.guides, ref,
		func(g domain.Guide) string { return g.ID },
		func(g domain.Guide) string { return g.Name })
}

var emergencyGuides = []domain.Guide{
	{
		Name:    "Car Accident",
		Summary: "Steps to take if you're in a car accident",
		Steps: []string{
			"Call emergency services.",
			"Check for injuries.",
			"Document the scene.",
		},
	},
	{
		Name:    "Flat Tire",
		Summary: "How to change a flat tire",
		Steps: []string{
			"Find a safe location.",
			"Use your spare tire.",
			"Call roadside assistance if needed.",
		},
	},
}
