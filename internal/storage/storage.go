// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/feelspace/feelsync/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrNotDraft is returned by PublishDraft when the target exists but is
// already published.
var ErrNotDraft = fmt.Errorf("not a draft")

// Meta keys used by the engine and identity provider.
const (
	DeviceIDKey = "device_id"
	HandleKey   = "handle"
	SeededKey   = "seeded"
)

// ListVentsParams ...
type ListVentsParams struct {
	// Drafts filters by the draft flag; nil returns everything.
	Drafts *bool
	Limit  uint16
}

// Storage provides methods for interacting with the on-device database.
// It is the single source of truth while the device is offline.
type Storage interface {
	ListVents(ctx context.Context, p *ListVentsParams) ([]*entities.Vent, error)
	GetVent(ctx context.Context, id string) (*entities.Vent, error)
	CreateVent(ctx context.Context, v *entities.Vent) error
	PublishDraft(ctx context.Context, id string) error
	DeleteVent(ctx context.Context, id string) error

	SetReflection(ctx context.Context, ventID, text string) error
	ListReflections(ctx context.Context) (map[string]string, error)

	CreateMoodLog(ctx context.Context, l *entities.MoodLog) error
	GetMoodLogByDate(ctx context.Context, date string) (*entities.MoodLog, error)
	UpdateMoodLog(ctx context.Context, l *entities.MoodLog) error
	ListMoodLogs(ctx context.Context, from, to string) ([]*entities.MoodLog, error)

	ListRooms(ctx context.Context) ([]*entities.Room, error)
	CreateRoom(ctx context.Context, r *entities.Room) error

	ListHiddenVents(ctx context.Context) ([]string, error)
	HideVent(ctx context.Context, id string) error
	ListBlockedHandles(ctx context.Context) ([]string, error)
	BlockHandle(ctx context.Context, handle string) error

	EnqueueAction(ctx context.Context, a *entities.Action) error
	ListActions(ctx context.Context) ([]*entities.Action, error)
	DeleteAction(ctx context.Context, id string) error

	GetMeta(ctx context.Context, key string) (string, error)
	SetMeta(ctx context.Context, key, value string) error

	ClearAll(ctx context.Context) error
}
