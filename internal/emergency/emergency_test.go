package emergency

import (
	"bytes"
	"errors"
	"testing"
)

type fakeLauncher struct {
	can     bool
	openErr error
	opened  []string
}

func (f *fakeLauncher) CanOpen(string) bool { return f.can }

func (f *fakeLauncher) Open(uri string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, uri)
	return nil
}

func TestCountries(t *testing.T) {
	t.Parallel()

	cs := Countries()
	if len(cs) != 12 {
		t.Fatalf("expected 12 countries, got %d", len(cs))
	}
	if cs[0] != DefaultCountry {
		t.Errorf("first country = %q, want %q", cs[0], DefaultCountry)
	}
	for _, c := range cs {
		if _, ok := Number(c); !ok {
			t.Errorf("no number for %s", c)
		}
	}
}

func TestDial(t *testing.T) {
	t.Parallel()

	l := &fakeLauncher{can: true}
	res, err := NewDialer(l).Dial("United Kingdom")
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	if !res.Dialed || res.URI != "tel:999" {
		t.Errorf("Dial() = %+v", res)
	}
	if len(l.opened) != 1 || l.opened[0] != "tel:999" {
		t.Errorf("opened %v", l.opened)
	}
}

func TestDial_NoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		country string
		can     bool
	}{
		{"unknown country", "Atlantis", true},
		{"empty country", "", true},
		{"launcher refuses", "Japan", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := &fakeLauncher{can: tt.can}
			res, err := NewDialer(l).Dial(tt.country)
			if err != nil {
				t.Fatalf("Dial() error: %v", err)
			}
			if res.Dialed || len(l.opened) != 0 {
				t.Errorf("expected no-op, got %+v opened=%v", res, l.opened)
			}
		})
	}
}

func TestDial_OpenError(t *testing.T) {
	t.Parallel()

	l := &fakeLauncher{can: true, openErr: errors.New("no handler")}
	res, err := NewDialer(l).Dial("Canada")
	if err == nil {
		t.Fatal("expected open error")
	}
	if res.Dialed {
		t.Error("Dialed should be false on error")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if n, err := Lookup("Australia"); err != nil || n != "000" {
		t.Errorf("Lookup(Australia) = %q, %v", n, err)
	}
	if _, err := Lookup("Atlantis"); !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("Lookup(Atlantis) error = %v, want ErrUnknownCountry", err)
	}
}

func TestPrintLauncher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := PrintLauncher{W: &buf}
	if p.CanOpen("https://example.com") {
		t.Error("PrintLauncher should only accept tel: URIs")
	}
	res, err := NewDialer(p).Dial("Germany")
	if err != nil || !res.Dialed {
		t.Fatalf("Dial() = %+v, %v", res, err)
	}
	if buf.String() != "Calling tel:112\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExecLauncher_RejectsNonTel(t *testing.T) {
	t.Parallel()

	if (ExecLauncher{Command: "true"}).CanOpen("mailto:x@example.com") {
		t.Error("ExecLauncher accepted a non-tel URI")
	}
}
