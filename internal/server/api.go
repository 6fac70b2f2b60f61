package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/service"
)

const maxMoodHistoryDays = 366

// Error ...
type Error struct {
	Error string `json:"error"`
}

// FeedResponse ...
type FeedResponse struct {
	Vents []Vent `json:"vents"`
}

// Vent is a display row of the feed.
type Vent struct {
	ID         string  `json:"id"`
	Handle     string  `json:"anonymousHandle"`
	Text       string  `json:"text"`
	Room       string  `json:"room"`
	MoodBefore int     `json:"moodBefore"`
	MoodAfter  int     `json:"moodAfter"`
	CreatedAt  int64   `json:"createdAt"`
	Reflection *string `json:"reflection,omitempty"`
}

// Draft ...
type Draft struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId,omitempty"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// DraftsResponse ...
type DraftsResponse struct {
	Drafts []Draft `json:"drafts"`
}

// ComposeVentRequest ...
type ComposeVentRequest struct {
	RoomID             string `json:"roomId"`
	Text               string `json:"text"`
	MoodBefore         int    `json:"moodBefore"`
	MoodAfter          int    `json:"moodAfter"`
	IsDraft            bool   `json:"isDraft"`
	GenerateReflection bool   `json:"generateReflection"`
}

// MoodLog ...
type MoodLog struct {
	Date  string `json:"date"`
	Level int    `json:"moodLevel"`
	Note  string `json:"note,omitempty"`
}

// MoodHistoryResponse ...
type MoodHistoryResponse struct {
	Logs []MoodLog `json:"moodLogs"`
}

// LogMoodRequest ...
type LogMoodRequest struct {
	Level int    `json:"moodLevel"`
	Note  string `json:"note"`
}

func toAPIVent(v service.FeedVent) Vent {
	return Vent{
		ID:         v.ID,
		Handle:     v.Handle,
		Text:       v.Text,
		Room:       v.RoomName,
		MoodBefore: v.MoodBefore,
		MoodAfter:  v.MoodAfter,
		CreatedAt:  v.CreatedAt.Unix(),
		Reflection: v.Reflection,
	}
}

func toAPIDraft(v *entities.Vent) Draft {
	return Draft{
		ID:        v.ID,
		RoomID:    v.RoomID,
		Text:      v.Text,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

func toAPIMoodLog(l *entities.MoodLog) MoodLog {
	return MoodLog{
		Date:  l.Date,
		Level: l.Level,
		Note:  l.Note,
	}
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(w http.ResponseWriter, err error, message string) {
	logrus.WithError(err).Error(message)
	// the cause stays in the log, the client gets a generic failure
	writeError(w, http.StatusInternalServerError, "internal error")
}
