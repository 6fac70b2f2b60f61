package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/feelspace/feelsync/internal/service"
	"github.com/feelspace/feelsync/internal/storage"
)

const dateLayout = "2006-01-02"

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	vents, err := s.s.LoadFeed(r.Context())
	if err != nil {
		writeInternalError(w, err, "failed to load feed")
		return
	}

	resp := FeedResponse{Vents: make([]Vent, len(vents))}
	for i, v := range vents {
		resp.Vents[i] = toAPIVent(v)
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) listDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := s.s.ListDrafts(r.Context())
	if err != nil {
		writeInternalError(w, err, "failed to list drafts")
		return
	}

	resp := DraftsResponse{Drafts: make([]Draft, len(drafts))}
	for i, d := range drafts {
		resp.Drafts[i] = toAPIDraft(d)
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) composeVent(w http.ResponseWriter, r *http.Request) {
	var req ComposeVentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := s.s.ComposeVent(r.Context(), service.ComposeParams{
		RoomRef:            req.RoomID,
		Text:               req.Text,
		MoodBefore:         req.MoodBefore,
		MoodAfter:          req.MoodAfter,
		Draft:              req.IsDraft,
		GenerateReflection: req.GenerateReflection,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidVent) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternalError(w, err, "failed to compose vent")
		return
	}

	writeOK(w, http.StatusCreated, toAPIDraft(v))
}

func (s server) publishDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid vent id")
		return
	}

	if err := s.s.PublishDraft(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			writeError(w, http.StatusNotFound, "draft not found")
			return
		}
		writeInternalError(w, err, "failed to publish draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteVent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid vent id")
		return
	}

	if err := s.s.DeleteVent(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "vent not found")
			return
		}
		writeInternalError(w, err, "failed to delete vent")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) hideVent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid vent id")
		return
	}

	if err := s.s.HideVent(r.Context(), id); err != nil {
		writeInternalError(w, err, "failed to hide vent")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) blockHandle(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		writeError(w, http.StatusBadRequest, "invalid handle")
		return
	}

	if err := s.s.BlockHandle(r.Context(), handle); err != nil {
		writeInternalError(w, err, "failed to block handle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) moodHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	to := time.Now().UTC()
	from := to.AddDate(0, -1, 0)

	if v := q.Get("from"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date")
			return
		}
		from = parsed
	}

	if v := q.Get("to"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date")
			return
		}
		to = parsed
	}

	if to.Sub(from) > maxMoodHistoryDays*24*time.Hour {
		writeError(w, http.StatusBadRequest, "date range is too wide")
		return
	}

	logs, err := s.s.MoodHistory(r.Context(), from, to)
	if err != nil {
		writeInternalError(w, err, "failed to load mood history")
		return
	}

	resp := MoodHistoryResponse{Logs: make([]MoodLog, len(logs))}
	for i, l := range logs {
		resp.Logs[i] = toAPIMoodLog(l)
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) logMood(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req LogMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := s.s.LogMood(r.Context(), date, req.Level, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMood) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternalError(w, err, "failed to log mood")
		return
	}

	writeOK(w, http.StatusOK, toAPIMoodLog(l))
}

func (s server) flush(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Flush(r.Context()); err != nil {
		writeInternalError(w, err, "failed to flush action queue")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.s.ClearAll(r.Context()); err != nil {
		writeInternalError(w, err, "failed to clear data")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
