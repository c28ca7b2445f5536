package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pbaille/dashalert/internal/catalog"
	"github.com/pbaille/dashalert/internal/domain"
	"github.com/pbaille/dashalert/internal/emergency"
	"github.com/pbaille/dashalert/internal/reminder"
	"github.com/pbaille/dashalert/internal/settings"
)

// ReminderLister lists stored reminders
type ReminderLister interface {
	ListReminders(limit, offset int) ([]domain.Reminder, error)
}

// Deps are the components the API serves
type Deps struct {
	Signs     *catalog.Catalog
	Guides    *catalog.GuideCatalog
	Reminders *reminder.Service
	Lister    ReminderLister
	Settings  *settings.Manager
	Verbose   bool
}

// Server handles HTTP requests for the DashAlert API
type Server struct {
	deps Deps
	addr string
}

// New creates a new API server
func New(deps Deps, addr string) *Server {
	return &Server{deps: deps, addr: addr}
}

// Handler builds the routed handler
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	// Catalog
	r.HandleFunc("/signs", s.listSigns).Methods("GET")
	r.HandleFunc("/signs/{id}", s.getSign).Methods("GET")
	r.HandleFunc("/groups", s.listGroups).Methods("GET")
	r.HandleFunc("/guides", s.listGuides).Methods("GET")

	// Emergency
	r.HandleFunc("/countries", s.listCountries).Methods("GET")
	r.HandleFunc("/emergency", s.selectedEmergency).Methods("GET")
	r.HandleFunc("/emergency/{country}", s.getEmergency).Methods("GET")

	// Reminders
	r.HandleFunc("/reminders", s.listReminders).Methods("GET")
	r.HandleFunc("/reminders", s.addReminder).Methods("POST")

	// Settings
	r.HandleFunc("/settings", s.getSettings).Methods("GET")
	r.HandleFunc("/settings", s.putSettings).Methods("PUT")

	// Health check
	r.HandleFunc("/health", s.health).Methods("GET")

	if s.deps.Verbose {
		r.Use(logRequests)
	}

	return withCORS(r)
}

// Run starts the HTTP server
func (s *Server) Run() error {
	log.Printf("Starting server on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// withCORS adds CORS headers for frontend development
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listSigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	signs := s.deps.Signs.Filter(query)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"signs": signs,
		"query": query,
		"count": len(signs),
	})
}

func (s *Server) getSign(w http.ResponseWriter, r *http.Request) {
	sign, ok := s.deps.Signs.Find(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "sign not found")
		return
	}
	writeJSON(w, http.StatusOK, sign)
}

// IconGroup is one icon key with the sign displayed for it
type IconGroup struct {
	Icon  string          `json:"icon"`
	Sign  domain.Category `json:"sign"`
	Count int             `json:"count"`
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	groups := catalog.GroupByIcon(s.deps.Signs.Filter(r.URL.Query().Get("q")))

	out := make([]IconGroup, 0, groups.Len())
	for _, key := range groups.Keys() {
		first, _ := groups.First(key)
		out = append(out, IconGroup{Icon: key, Sign: first, Count: len(groups.Get(key))})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": out,
	})
}

func (s *Server) listGuides(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"guides": s.deps.Guides.Filter(query),
		"query":  query,
	})
}

func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"countries": emergency.Countries(),
		"selected":  s.deps.Settings.State().Country,
	})
}

func (s *Server) selectedEmergency(w http.ResponseWriter, r *http.Request) {
	s.writeEmergency(w, s.deps.Settings.State().Country)
}

func (s *Server) getEmergency(w http.ResponseWriter, r *http.Request) {
	s.writeEmergency(w, mux.Vars(r)["country"])
}

func (s *Server) writeEmergency(w http.ResponseWriter, country string) {
	number, err := emergency.Lookup(country)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, emergency.Result{
		Country: country,
		Number:  number,
		URI:     emergency.URI(number),
	})
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}

	reminders, err := s.deps.Lister.ListReminders(limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reminders": reminders,
		"limit":     limit,
		"offset":    offset,
	})
}

func (s *Server) addReminder(w http.ResponseWriter, r *http.Request) {
	var draft reminder.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(draft.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if draft.DueDate.IsZero() {
		writeError(w, http.StatusBadRequest, "due_date is required")
		return
	}

	out := s.deps.Reminders.Create(r.Context(), draft)
	switch {
	case out.OK:
		writeJSON(w, http.StatusCreated, out)
	case out.Denied:
		writeJSON(w, http.StatusForbidden, out)
	default:
		writeJSON(w, http.StatusInternalServerError, out)
	}
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Settings.State())
}

// SettingsRequest is the request body for updating settings
type SettingsRequest struct {
	DarkMode *bool   `json:"dark_mode,omitempty"`
	Country  *string `json:"country,omitempty"`
}

func (s *Server) putSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.deps.Settings.Update(req.DarkMode, req.Country); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, settings.ErrUnknownCountry) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.deps.Settings.State())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
