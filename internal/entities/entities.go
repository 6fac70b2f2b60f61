// Package entities contains main entities of service.
package entities

import (
	"encoding/json"
	"time"
)

// DefaultHandle is used when a vent's author never picked a display name.
const DefaultHandle = "Anonymous"

// DefaultMood is the neutral mood intensity.
const DefaultMood = 5

// Vent is a single anonymous entry, optionally bound to a room.
type Vent struct {
	ID         string
	RoomID     string
	RoomName   string
	Text       string
	Handle     string
	DeviceID   string
	MoodBefore int
	MoodAfter  int
	CreatedAt  time.Time
	Draft      bool
	Reflection *string
}

// RoomRef returns the reference used to resolve the vent's room label,
// preferring the id over a denormalized name.
func (v Vent) RoomRef() string {
	if v.RoomID != "" {
		return v.RoomID
	}

	return v.RoomName
}

// Room is a topical category grouping vents.
type Room struct {
	ID   string
	Name string
}

// MoodLog is one mood record per calendar day. Date is a YYYY-MM-DD key,
// unique per device; reconciliation with remote logs goes by date, not id.
type MoodLog struct {
	ID    string
	Date  string
	Level int
	Note  string
}

// Action entity types and operations.
const (
	ActionEntityVent = "vent"

	ActionOpCreate = "create"
)

// Action is a pending remote operation awaiting connectivity.
// Seq is assigned by storage and fixes replay order.
type Action struct {
	ID         string
	Seq        int64
	Entity     string
	Op         string
	Payload    json.RawMessage
	EnqueuedAt time.Time
}
