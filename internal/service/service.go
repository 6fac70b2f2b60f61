// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/feelspace/feelsync/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrDraftNotFound returned when a publish targets a vent id that does not
// exist locally.
var ErrDraftNotFound = errors.New("draft not found")

// ErrInvalidVent returned when a compose payload fails validation before
// touching storage or the backend.
var ErrInvalidVent = errors.New("invalid vent")

// ErrInvalidMood returned when a mood level is outside 1..10.
var ErrInvalidMood = errors.New("invalid mood level")

// MaxVentLength bounds the vent text.
const MaxVentLength = 500

// FeedVent is a display row: moderation-filtered, with the room label
// resolved (never a raw id).
type FeedVent struct {
	ID         string
	Handle     string
	Text       string
	RoomName   string
	MoodBefore int
	MoodAfter  int
	CreatedAt  time.Time
	Reflection *string
}

// ComposeParams ...
type ComposeParams struct {
	RoomRef            string
	Text               string
	MoodBefore         int
	MoodAfter          int
	Draft              bool
	GenerateReflection bool
}

// Connectivity reports the last observed backend reachability.
type Connectivity interface {
	Online() bool
}

// Service reconciles the local store and the backend into one view and
// drives the offline action queue.
type Service interface {
	LoadFeed(ctx context.Context) ([]FeedVent, error)
	ListDrafts(ctx context.Context) ([]*entities.Vent, error)
	ComposeVent(ctx context.Context, p ComposeParams) (*entities.Vent, error)
	PublishDraft(ctx context.Context, id string) error
	DeleteVent(ctx context.Context, id string) error

	HideVent(ctx context.Context, id string) error
	BlockHandle(ctx context.Context, handle string) error

	LogMood(ctx context.Context, date string, level int, note string) (*entities.MoodLog, error)
	MoodHistory(ctx context.Context, from, to time.Time) ([]*entities.MoodLog, error)

	Flush(ctx context.Context) error
	ClearAll(ctx context.Context) error
}
