package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"localhost" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"4000" description:"port to listen on"`
}{}

type vent struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	Text       string    `json:"text"`
	Handle     string    `json:"anonymousHandle"`
	DeviceID   string    `json:"deviceId"`
	MoodBefore int       `json:"moodBefore"`
	MoodAfter  int       `json:"moodAfter"`
	CreatedAt  time.Time `json:"createdAt"`
	Reflection *string   `json:"reflection,omitempty"`
}

type room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type moodLog struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Level int    `json:"moodLevel"`
	Note  string `json:"note"`
}

// store is a volatile stand-in for the real backend. Everything is lost on
// restart, which is exactly what a sync-engine test wants.
type store struct {
	mu    sync.Mutex
	vents []vent
	logs  []moodLog
}

var rooms = []room{
	{ID: "r-general", Name: "General"},
	{ID: "r-work", Name: "Work"},
	{ID: "r-relationships", Name: "Relationships"},
	{ID: "r-late-night", Name: "Late Night"},
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "mockbackend"
	parser.LongDescription = "In-memory Feelspace backend for local development"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	today := time.Now().UTC()
	s := &store{
		logs: []moodLog{
			{ID: uuid.NewString(), Date: today.AddDate(0, 0, -2).Format("2006-01-02"), Level: 4, Note: "rough start"},
			{ID: uuid.NewString(), Date: today.AddDate(0, 0, -1).Format("2006-01-02"), Level: 6},
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/v1/rooms", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]interface{}{"rooms": rooms})
	})

	r.Get("/v1/vents", s.listVents)
	r.Post("/v1/vents", s.createVent)
	r.Get("/v1/moodlogs", s.listMoodLogs)

	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)
	logrus.WithField("address", addr).Info("mockbackend started")

	if err := http.ListenAndServe(addr, r); err != nil { // nolint:gosec
		logrus.WithError(err).Fatal("server stopped")
	}
}

func (s *store) listVents(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]vent, len(s.vents))
	copy(out, s.vents)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	writeJSON(w, map[string]interface{}{"vents": out, "total": len(out)})
}

func (s *store) createVent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomID             string `json:"roomId"`
		Text               string `json:"text"`
		Handle             string `json:"anonymousHandle"`
		DeviceID           string `json:"deviceId"`
		MoodBefore         int    `json:"moodBefore"`
		MoodAfter          int    `json:"moodAfter"`
		GenerateReflection bool   `json:"generateReflection"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	v := vent{
		ID:         uuid.NewString(),
		RoomID:     req.RoomID,
		Text:       req.Text,
		Handle:     req.Handle,
		DeviceID:   req.DeviceID,
		MoodBefore: req.MoodBefore,
		MoodAfter:  req.MoodAfter,
		CreatedAt:  time.Now().UTC(),
	}

	if req.GenerateReflection {
		reflection := "Thanks for putting that into words. Naming it is already a step."
		v.Reflection = &reflection
	}

	s.mu.Lock()
	s.vents = append(s.vents, v)
	s.mu.Unlock()

	writeJSON(w, v)
}

// listMoodLogs serves one shared history regardless of deviceId. The mock
// only ever talks to a single engine instance.
func (s *store) listMoodLogs(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, map[string]interface{}{"moodLogs": s.logs})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to write response")
	}
}
