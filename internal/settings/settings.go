// Package settings holds the application state that survives restarts:
// the theme preference, the selected country and onboarding progress.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/pbaille/dashalert/internal/emergency"
)

// Keys under which the flags are persisted.
const (
	KeyDarkMode      = "dark_mode"
	KeyCountry       = "country"
	KeyTourCompleted = "has_completed_tour"
)

// ErrUnknownCountry is returned when selecting a country outside the list
var ErrUnknownCountry = errors.New("country is not in the supported list")

// KV is the flag storage backing the state
type KV interface {
	GetSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// State is the persisted application state
type State struct {
	DarkMode         bool   `json:"dark_mode"`
	Country          string `json:"country"`
	HasCompletedTour bool   `json:"has_completed_tour"`
}

// Defaults returns the state used for flags that were never saved
func Defaults(darkMode bool, country string) State {
	if country == "" {
		country = emergency.DefaultCountry
	}
	return State{DarkMode: darkMode, Country: country}
}

// Load reads the state, falling back to defaults per flag
func Load(kv KV, defaults State) (State, error) {
	st := defaults

	if v, ok, err := kv.GetSetting(KeyDarkMode); err != nil {
		return st, fmt.Errorf("load %s: %w", KeyDarkMode, err)
	} else if ok {
		if b, perr := strconv.ParseBool(v); perr == nil {
			st.DarkMode = b
		}
	}

	if v, ok, err := kv.GetSetting(KeyCountry); err != nil {
		return st, fmt.Errorf("load %s: %w", KeyCountry, err)
	} else if ok && v != "" {
		st.Country = v
	}

	if v, ok, err := kv.GetSetting(KeyTourCompleted); err != nil {
		return st, fmt.Errorf("load %s: %w", KeyTourCompleted, err)
	} else if ok {
		if b, perr := strconv.ParseBool(v); perr == nil {
			st.HasCompletedTour = b
		}
	}

	return st, nil
}

// Save writes every flag
func (s State) Save(kv KV) error {
	pairs := [][2]string{
		{KeyDarkMode, strconv.FormatBool(s.DarkMode)},
		{KeyCountry, s.Country},
		{KeyTourCompleted, strconv.FormatBool(s.HasCompletedTour)},
	}
	for _, p := range pairs {
		if err := kv.SetSetting(p[0], p[1]); err != nil {
			return fmt.Errorf("save %s: %w", p[0], err)
		}
	}
	return nil
}

// Change is delivered to subscribers when a flag changes value
type Change struct {
	Key string `json:"key"`
	Old string `json:"old"`
	New string `json:"new"`
}

// Manager owns the state and persists every change
type Manager struct {
	mu    sync.Mutex
	kv    KV
	state State
	subs  []func(Change)
}

// NewManager loads the state from kv
func NewManager(kv KV, defaults State) (*Manager, error) {
	st, err := Load(kv, defaults)
	if err != nil {
		return nil, err
	}
	return &Manager{kv: kv, state: st}, nil
}

// State returns a snapshot
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn for change notifications
func (m *Manager) Subscribe(fn func(Change)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// SetDarkMode stores the theme preference
func (m *Manager) SetDarkMode(on bool) error {
	return m.update(KeyDarkMode, strconv.FormatBool(on), func(s *State) { s.DarkMode = on })
}

// ToggleDarkMode flips the theme preference and returns the new value
func (m *Manager) ToggleDarkMode() (bool, error) {
	on := !m.State().DarkMode
	return on, m.SetDarkMode(on)
}

// SetCountry selects the country used for emergency dialing
func (m *Manager) SetCountry(country string) error {
	if !emergency.IsCountry(country) {
		return fmt.Errorf("%w: %s", ErrUnknownCountry, country)
	}
	return m.update(KeyCountry, country, func(s *State) { s.Country = country })
}

// Update applies a dark mode and a country change together; nil leaves a
// flag alone. The country is validated before anything is written, and a
// failed dark mode write restores the previous country.
func (m *Manager) Update(darkMode *bool, country *string) error {
	if country != nil && !emergency.IsCountry(*country) {
		return fmt.Errorf("%w: %s", ErrUnknownCountry, *country)
	}

	prev := m.State().Country
	if country != nil {
		if err := m.SetCountry(*country); err != nil {
			return err
		}
	}
	if darkMode != nil {
		if err := m.SetDarkMode(*darkMode); err != nil {
			if country != nil {
				if rerr := m.SetCountry(prev); rerr != nil {
					return errors.Join(err, fmt.Errorf("restore country: %w", rerr))
				}
			}
			return err
		}
	}
	return nil
}

// MarkTourCompleted records that the onboarding tour was started once
func (m *Manager) MarkTourCompleted() error {
	return m.update(KeyTourCompleted, "true", func(s *State) { s.HasCompletedTour = true })
}

func (m *Manager) update(key, value string, apply func(*State)) error {
	m.mu.Lock()
	old := stringValue(m.state, key)
	if old == value {
		m.mu.Unlock()
		return nil
	}
	if err := m.kv.SetSetting(key, value); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("save %s: %w", key, err)
	}
	apply(&m.state)
	subs := make([]func(Change), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	ch := Change{Key: key, Old: old, New: value}
	for _, fn := range subs {
		fn(ch)
	}
	return nil
}

func stringValue(s State, key string) string {
	switch key {
	case KeyDarkMode:
		return strconv.FormatBool(s.DarkMode)
	case KeyCountry:
		return s.Country
	case KeyTourCompleted:
		return strconv.FormatBool(s.HasCompletedTour)
	}
	return ""
}
