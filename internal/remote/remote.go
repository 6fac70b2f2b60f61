// Package remote contains the backend gateway interface.
package remote

import (
	"context"
	"fmt"

	"github.com/feelspace/feelsync/internal/entities"
)

//go:generate mockgen -destination=./mock/remote.go -package=mock -source=remote.go

// ErrUnavailable is the single condition the gateway reports for any
// network, timeout or server failure. Callers never need the transport
// details, only that the backend is not usable right now.
var ErrUnavailable = fmt.Errorf("remote is unavailable")

// VentsFilter ...
type VentsFilter struct {
	Limit uint16
}

// VentsPage ...
type VentsPage struct {
	Vents []*entities.Vent
	Total uint32
}

// CreateVentParams is the payload of a vent creation, both for direct
// calls and for queued replays.
type CreateVentParams struct {
	RoomID             string `json:"roomId,omitempty"`
	Text               string `json:"text"`
	Handle             string `json:"anonymousHandle"`
	DeviceID           string `json:"deviceId"`
	MoodBefore         int    `json:"moodBefore"`
	MoodAfter          int    `json:"moodAfter"`
	GenerateReflection bool   `json:"generateReflection,omitempty"`
}

// MoodLogsFilter ...
type MoodLogsFilter struct {
	DeviceID string
	From     string
	To       string
}

// Gateway is a typed wrapper over the backend API.
type Gateway interface {
	ListVents(ctx context.Context, f VentsFilter) (*VentsPage, error)
	CreateVent(ctx context.Context, p CreateVentParams) (*entities.Vent, error)
	ListMoodLogs(ctx context.Context, f MoodLogsFilter) ([]*entities.MoodLog, error)
	ListRooms(ctx context.Context) ([]*entities.Room, error)
	Ping(ctx context.Context) error
}
