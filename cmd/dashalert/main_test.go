package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/pbaille/dashalert/internal/catalog"
)

func TestParseDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"empty is now", "", now, false},
		{"date", "2026-04-02", time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local), false},
		{"date and time", "2026-04-02 08:15", time.Date(2026, 4, 2, 8, 15, 0, 0, time.Local), false},
		{"rfc3339", "2026-04-02T08:15:00Z", time.Date(2026, 4, 2, 8, 15, 0, 0, time.UTC), false},
		{"garbage", "next tuesday", time.Time{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseDue(tt.in, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDue(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("line one\nline two", 40); got != "line one line two" {
		t.Errorf("newlines not flattened: %q", got)
	}
	if got := truncate("abcdefghij", 8); got != "abcde..." {
		t.Errorf("truncate long = %q", got)
	}

	long := strings.Repeat("a", 46) + "ümlaut title"
	got := truncate(long, 50)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a multi-byte character: %q", got)
	}
	if want := strings.Repeat("a", 46) + "ü..."; got != want {
		t.Errorf("truncate non-ASCII = %q, want %q", got, want)
	}
	if got := truncate("Ölwechsel", 20); got != "Ölwechsel" {
		t.Errorf("short non-ASCII title changed: %q", got)
	}
}

func testDoc() exportDoc {
	return exportDoc{Signs: catalog.Default().All(), Guides: catalog.Guides().All()}
}

func TestWriteExport_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeExport(&buf, "json", testDoc()); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Signs []struct {
			Name   string `json:"name"`
			Causes []struct {
				Solution string `json:"solution"`
			} `json:"causes"`
		} `json:"signs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(got.Signs) != catalog.Default().Len() {
		t.Fatalf("exported %d signs, want %d", len(got.Signs), catalog.Default().Len())
	}
	if got.Signs[0].Name != "Check Engine Light" || got.Signs[0].Causes[0].Solution == "" {
		t.Errorf("first sign = %+v", got.Signs[0])
	}
}

func TestWriteExport_TOML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeExport(&buf, "toml", testDoc()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[[signs]]") {
		t.Error("TOML export has no [[signs]] tables")
	}

	var got exportDoc
	if err := toml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("export is not valid TOML: %v", err)
	}
	if len(got.Signs) != catalog.Default().Len() || len(got.Guides) != len(catalog.Guides().All()) {
		t.Errorf("decoded %d signs and %d guides", len(got.Signs), len(got.Guides))
	}
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := writeExport(&bytes.Buffer{}, "yaml", testDoc()); err == nil {
		t.Error("expected error for unknown format")
	}
}
