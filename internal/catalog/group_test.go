package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pbaille/dashalert/internal/domain"
)

func TestGroupByIcon_SharedIcon(t *testing.T) {
	t.Parallel()

	c := New([]domain.Category{
		{Name: "Check Engine Light", IconRef: "EngineCheck", Entries: []domain.Entry{{Name: "Misfire"}}},
		{Name: "Low Oil Pressure", IconRef: "LowOilPressure", Entries: []domain.Entry{{Name: "Low Oil Pressure"}}},
		{Name: "ECU Failure", IconRef: "EngineCheck", Entries: []domain.Entry{{Name: "ECU Failure"}}},
	})

	g := GroupByIcon(c.All())
	if g.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", g.Len())
	}

	group := g.Get("EngineCheck")
	if diff := cmp.Diff([]string{"Check Engine Light", "ECU Failure"}, names(group)); diff != "" {
		t.Errorf("EngineCheck group mismatch (-want +got):\n%s", diff)
	}

	first, ok := g.First("EngineCheck")
	if !ok || first.Name != "Check Engine Light" {
		t.Errorf("First(EngineCheck) = %q, %v", first.Name, ok)
	}
}

func TestGroup_KeyOrdering(t *testing.T) {
	t.Parallel()

	g := Group([]string{"b1", "a1", "b2", "c1"}, func(s string) string { return s[:1] })

	if diff := cmp.Diff([]string{"a", "b", "c"}, g.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, g.InsertionOrder()); diff != "" {
		t.Errorf("InsertionOrder() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := g.First("z"); ok {
		t.Error("First on a missing key reported ok")
	}
}

func TestGroupByIcon_DefaultIsOnePerSign(t *testing.T) {
	t.Parallel()

	g := GroupByIcon(Default().All())
	if g.Len() != Default().Len() {
		t.Errorf("expected one group per sign, got %d groups for %d signs", g.Len(), Default().Len())
	}
}
