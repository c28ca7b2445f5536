// Package emergency maps the selectable countries to their emergency
// numbers and dials them through a URI launcher.
package emergency

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultCountry is selected until the user picks another one
const DefaultCountry = "United States"

// ErrUnknownCountry is returned by Lookup for a country outside the list
var ErrUnknownCountry = errors.New("unknown country")

var countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Ireland",
	"Germany",
	"France",
	"Spain",
	"Italy",
	"Australia",
	"New Zealand",
	"India",
	"Japan",
}

var numbers = map[string]string{
	"United States":  "911",
	"Canada":         "911",
	"United Kingdom": "999",
	"Ireland":        "112",
	"Germany":        "112",
	"France":         "112",
	"Spain":          "112",
	"Italy":          "112",
	"Australia":      "000",
	"New Zealand":    "111",
	"India":          "112",
	"Japan":          "110",
}

// Countries returns the selectable countries in display order
func Countries() []string {
	out := make([]string, len(countries))
	copy(out, countries)
	return out
}

// IsCountry reports whether name is one of the selectable countries
func IsCountry(name string) bool {
	for _, c := range countries {
		if c == name {
			return true
		}
	}
	return false
}

// Number returns the emergency number for country
func Number(country string) (string, bool) {
	n, ok := numbers[country]
	return n, ok
}

// Lookup is Number with an error for unmapped countries
func Lookup(country string) (string, error) {
	n, ok := Number(country)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	return n, nil
}

// URI builds the tel: URI for a number
func URI(number string) string {
	return "tel:" + number
}

// Launcher opens URIs on the host
type Launcher interface {
	CanOpen(uri string) bool
	Open(uri string) error
}

// Result describes what a Dial did
type Result struct {
	Country string `json:"country"`
	Number  string `json:"number,omitempty"`
	URI     string `json:"uri,omitempty"`
	Dialed  bool   `json:"dialed"`
}

// Dialer dials the emergency number of a country
type Dialer struct {
	launcher Launcher
}

// NewDialer creates a Dialer
func NewDialer(l Launcher) *Dialer {
	return &Dialer{launcher: l}
}

// Dial opens the tel: URI for country. An unmapped country or a URI the
// launcher cannot handle is a no-op.
func (d *Dialer) Dial(country string) (Result, error) {
	res := Result{Country: country}

	number, ok := Number(country)
	if !ok {
		log.Printf("No emergency number for %q", country)
		return res, nil
	}
	res.Number = number
	res.URI = URI(number)

	if !d.launcher.CanOpen(res.URI) {
		log.Printf("Launcher cannot open %s", res.URI)
		return res, nil
	}
	if err := d.launcher.Open(res.URI); err != nil {
		return res, fmt.Errorf("open %s: %w", res.URI, err)
	}

	res.Dialed = true
	return res, nil
}

// PrintLauncher writes URIs instead of opening them
type PrintLauncher struct {
	W io.Writer
}

// CanOpen accepts tel: URIs
func (p PrintLauncher) CanOpen(uri string) bool {
	return strings.HasPrefix(uri, "tel:")
}

// Open prints the URI
func (p PrintLauncher) Open(uri string) error {
	_, err := fmt.Fprintf(p.W, "Calling %s\n", uri)
	return err
}

// ExecLauncher hands URIs to the desktop opener
type ExecLauncher struct {
	// Command overrides the opener binary
	Command string
}

func (e ExecLauncher) opener() string {
	if e.Command != "" {
		return e.Command
	}
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// CanOpen reports whether the opener exists and the URI is a tel: URI
func (e ExecLauncher) CanOpen(uri string) bool {
	if !strings.HasPrefix(uri, "tel:") {
		return false
	}
	_, err := exec.LookPath(e.opener())
	return err == nil
}

// Open runs the opener on the URI
func (e ExecLauncher) Open(uri string) error {
	return exec.Command(e.opener(), uri).Run()
}
