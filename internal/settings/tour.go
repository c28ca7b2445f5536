package settings

// TourSteps is the number of onboarding steps
const TourSteps = 6

var tourAnchors = map[int]string{
	1: "emergencyCallButton",
	2: "themeToggleButton",
	3: "settingsButton",
	4: "bottomNavigation",
	5: "dashboardSearch",
	6: "reminderButton",
}

var tourHints = map[int]string{
	1: "Call the emergency number for your selected country.",
	2: "Switch between the dark and light theme.",
	3: "Open settings to pick your country.",
	4: "Move between the dashboard, emergency guide and reminders.",
	5: "Type part of a warning light's name to narrow the list.",
	6: "Create a maintenance reminder with a due date and priority.",
}

// Tour tracks the onboarding walkthrough. Progress is not persisted, only
// the fact that it was started.
type Tour struct {
	Step   int  `json:"step"`
	Active bool `json:"active"`

	m *Manager
}

// NewTour creates an inactive tour
func NewTour(m *Manager) *Tour {
	return &Tour{m: m}
}

// Start shows the first step
func (t *Tour) Start() error {
	t.Step = 1
	t.Active = true
	return t.m.MarkTourCompleted()
}

// Next advances one step, ending the tour after the last one.
// It reports whether the tour is still active.
func (t *Tour) Next() bool {
	if !t.Active {
		return false
	}
	if t.Step >= TourSteps {
		t.End()
		return false
	}
	t.Step++
	return true
}

// End stops the tour
func (t *Tour) End() {
	t.Step = 0
	t.Active = false
}

// Anchor is the UI element highlighted by the current step
func (t *Tour) Anchor() string {
	return tourAnchors[t.Step]
}

// Hint is the text shown for the current step
func (t *Tour) Hint() string {
	return tourHints[t.Step]
}
